package types

type Category string

const (
	CategoryAds      Category = "ads"      // ad-serving
	CategoryTrackers Category = "trackers" // tracking, telemetry, analytics
	CategoryMalware  Category = "malware"  // malware, cryptojacking
	CategoryPhishing Category = "phishing" // phishing, scams
	CategorySmartTV  Category = "smart-tv" // smart TV & streaming stick telemetry
	CategoryNSFW     Category = "nsfw"     // adult content
)

var AllCategories = []Category{
	CategoryAds,
	CategoryTrackers,
	CategoryMalware,
	CategoryPhishing,
	CategorySmartTV,
	CategoryNSFW,
}

// Filename of the bundled source list for the category.
func (c Category) Filename() string {
	return string(c) + ".txt"
}

type OutputFormat string

const (
	OutputFormatHosts   OutputFormat = "hosts"   // 0.0.0.0 example.com
	OutputFormatDomains OutputFormat = "domains" // example.com
	OutputFormatRPZ     OutputFormat = "rpz"     // example.com.rpz. CNAME .
)
