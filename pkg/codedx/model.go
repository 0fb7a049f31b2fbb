package codedx

import (
	"encoding/xml"
	"io"

	"golang.org/x/xerrors"
)

const (
	FindingTypeNetwork     = "Network"
	DescriptionFormatPlain = "plain-text"
	LocationTypeURL        = "url"
)

// Report is the root of a Code Dx XML findings document.
type Report struct {
	XMLName  xml.Name `xml:"report"`
	Date     string   `xml:"date,attr"`
	Findings Findings `xml:"findings"`
}

type Findings struct {
	Finding []Finding `xml:"finding"`
}

// Finding is a single issue reported by a tool.
type Finding struct {
	Severity    string      `xml:"severity,attr"`
	Type        string      `xml:"type,attr"`
	Description Description `xml:"description"`
	Location    Location    `xml:"location"`
	Tool        Tool        `xml:"tool"`
	CVEs        *CVEs       `xml:"cves,omitempty"`
	Host        Host        `xml:"host"`
	Metadata    Metadata    `xml:"metadata"`
}

type Description struct {
	Format string `xml:"format,attr"`
	Text   string `xml:",chardata"`
}

// Location is required by the Code Dx importer even for findings that have none.
type Location struct {
	Type string `xml:"type,attr"`
	Path string `xml:"path,attr"`
}

type Tool struct {
	Name     string `xml:"name,attr"`
	Category string `xml:"category,attr"`
	Code     string `xml:"code,attr"`
}

type CVEs struct {
	CVE []CVE `xml:"cve"`
}

type CVE struct {
	Year           string `xml:"year,attr"`
	SequenceNumber string `xml:"sequence-number,attr"`
}

type Host struct {
	Hostname        string `xml:"hostname"`
	OperatingSystem string `xml:"operating-system"`
}

type Metadata struct {
	Values []Value `xml:"value"`
}

// Value is a key/value metadata entry.
type Value struct {
	Key  string `xml:"key,attr"`
	Text string `xml:",chardata"`
}

// Encode writes the XML declaration followed by the report to w.
func Encode(w io.Writer, report Report) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return xerrors.Errorf("writing XML header: %w", err)
	}

	encoder := xml.NewEncoder(w)
	if err := encoder.Encode(report); err != nil {
		return xerrors.Errorf("encoding report: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return xerrors.Errorf("closing encoder: %w", err)
	}
	return nil
}
