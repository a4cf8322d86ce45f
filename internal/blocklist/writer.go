package blocklist

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/miekg/dns"
	"github.com/st3v3nmw/baker/internal/types"
)

const (
	rpzOrigin = "rpz."
	rpzTTL    = 300
)

type writeFunc func(w io.Writer, set *Set) (int, error)

// WriteFile creates (or truncates) path and writes the set to it.
// It returns the number of domains written.
func WriteFile(path string, set *Set, format types.OutputFormat) (n int, err error) {
	write, err := writerFor(format)
	if err != nil {
		return 0, err
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create blocklist: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close blocklist: %w", cerr)
		}
	}()

	buf := bufio.NewWriter(file)
	n, err = write(buf, set)
	if err != nil {
		return n, fmt.Errorf("failed to write blocklist: %w", err)
	}

	if err := buf.Flush(); err != nil {
		return n, fmt.Errorf("failed to write blocklist: %w", err)
	}

	return n, nil
}

// Write serializes the set to w in the given format.
func Write(w io.Writer, set *Set, format types.OutputFormat) (int, error) {
	write, err := writerFor(format)
	if err != nil {
		return 0, err
	}
	return write(w, set)
}

func writerFor(format types.OutputFormat) (writeFunc, error) {
	switch format {
	case types.OutputFormatHosts, "":
		return writeHosts, nil
	case types.OutputFormatDomains:
		return writeDomains, nil
	case types.OutputFormatRPZ:
		return writeRPZ, nil
	}
	return nil, fmt.Errorf("unsupported output format: %s", format)
}

func writeHosts(w io.Writer, set *Set) (int, error) {
	return writeLines(w, set, "0.0.0.0 ")
}

func writeDomains(w io.Writer, set *Set) (int, error) {
	return writeLines(w, set, "")
}

func writeLines(w io.Writer, set *Set, prefix string) (int, error) {
	n := 0
	for domain := range set.All() {
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, domain); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// writeRPZ writes a response policy zone answering NXDOMAIN for every domain.
func writeRPZ(w io.Writer, set *Set) (int, error) {
	soa := &dns.SOA{
		Hdr: dns.RR_Header{
			Name:   rpzOrigin,
			Rrtype: dns.TypeSOA,
			Class:  dns.ClassINET,
			Ttl:    rpzTTL,
		},
		Ns:      "localhost.",
		Mbox:    "hostmaster.localhost.",
		Serial:  uint32(time.Now().Unix()),
		Refresh: 3600,
		Retry:   600,
		Expire:  604800,
		Minttl:  rpzTTL,
	}
	ns := &dns.NS{
		Hdr: dns.RR_Header{
			Name:   rpzOrigin,
			Rrtype: dns.TypeNS,
			Class:  dns.ClassINET,
			Ttl:    rpzTTL,
		},
		Ns: "localhost.",
	}

	if _, err := fmt.Fprintf(w, "$TTL %d\n%s\n%s\n", rpzTTL, soa, ns); err != nil {
		return 0, err
	}

	n := 0
	for domain := range set.All() {
		cname, ok := rpzRecord(domain)
		if !ok {
			slog.Debug("Skipping domain that is not a valid zone owner name", "domain", domain)
			continue
		}
		if _, err := fmt.Fprintln(w, cname); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// rpzRecord builds the NXDOMAIN rule for domain. Names a zone parser would
// reject or read back differently (empty or oversized labels, zone-file
// specials like ';') are reported as not ok.
func rpzRecord(domain string) (*dns.CNAME, bool) {
	owner := dns.Fqdn(domain) + rpzOrigin
	if _, ok := dns.IsDomainName(owner); !ok {
		return nil, false
	}

	cname := &dns.CNAME{
		Hdr: dns.RR_Header{
			Name:   owner,
			Rrtype: dns.TypeCNAME,
			Class:  dns.ClassINET,
			Ttl:    rpzTTL,
		},
		Target: ".",
	}

	rr, err := dns.NewRR(cname.String())
	if err != nil || rr == nil || rr.Header().Name != owner {
		return nil, false
	}
	return cname, true
}
