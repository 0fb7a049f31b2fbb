package scan

import (
	"io"
	"strings"
	"time"

	"github.com/codedx/twistlock2codedx/pkg/codedx"
	"github.com/codedx/twistlock2codedx/pkg/twistlock"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// DateFormat is the layout of the report date attribute.
const DateFormat = "2006-01-02T15:04:05.000000"

const toolName = "Twistlock"

// Clock wraps the Now method. Introduced to allow replacing the global state with fixed clocks to facilitate testing.
// Now returns the current time.
type Clock interface {
	Now() time.Time
}

type SystemClock struct {
}

func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// RowSource wraps the Next method.
// Next returns the next data row of a CSV export, or io.EOF when the rows are exhausted.
type RowSource interface {
	Next() (twistlock.Row, error)
}

// Transformer wraps the Transform and Report methods.
// Transform maps every data row of a Twistlock CSV export into a Code Dx finding, keeping row order.
// Report wraps the findings in a Code Dx report dated with the current time.
type Transformer interface {
	Transform(schema twistlock.Schema, rows RowSource) ([]codedx.Finding, error)
	Report(findings []codedx.Finding) codedx.Report
}

type transformer struct {
	clock Clock
}

// NewTransformer constructs a Transformer with the given Clock.
func NewTransformer(clock Clock) Transformer {
	return &transformer{
		clock: clock,
	}
}

func (t *transformer) Transform(schema twistlock.Schema, rows RowSource) ([]codedx.Finding, error) {
	var findings []codedx.Finding

	for {
		row, err := rows.Next()
		if err == io.EOF {
			return findings, nil
		}
		if err != nil {
			return nil, err
		}

		finding, err := t.toFinding(schema.Fields, row)
		if err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{
			"line":     row.Line,
			"severity": finding.Severity,
		}).Trace("Mapped finding")

		findings = append(findings, finding)
	}
}

func (t *transformer) Report(findings []codedx.Finding) codedx.Report {
	return codedx.Report{
		Date: t.clock.Now().Format(DateFormat),
		Findings: codedx.Findings{
			Finding: findings,
		},
	}
}

// fieldReader remembers the first failed lookup so a row can be mapped in one pass.
type fieldReader struct {
	row twistlock.Row
	err error
}

func (r *fieldReader) get(column string) string {
	if r.err != nil {
		return ""
	}
	value, err := r.row.Get(column)
	if err != nil {
		r.err = err
	}
	return value
}

func (t *transformer) toFinding(fields twistlock.Fields, row twistlock.Row) (codedx.Finding, error) {
	r := &fieldReader{row: row}

	finding := codedx.Finding{
		Severity: r.get(fields.Severity),
		Type:     codedx.FindingTypeNetwork,
		Description: codedx.Description{
			Format: codedx.DescriptionFormatPlain,
			Text:   r.get(fields.Description),
		},
		Location: codedx.Location{
			Type: codedx.LocationTypeURL,
		},
		Tool: codedx.Tool{
			Name:     toolName,
			Category: r.get(fields.Type),
			Code:     r.get(fields.ComplianceID),
		},
	}

	cveID := r.get(fields.CVEID)
	if r.err == nil && cveID != "" {
		cve, err := t.toCVE(row.Line, cveID)
		if err != nil {
			return codedx.Finding{}, err
		}
		finding.CVEs = &codedx.CVEs{CVE: []codedx.CVE{cve}}
	}

	finding.Host = codedx.Host{
		Hostname:        r.get(fields.Hostname),
		OperatingSystem: r.get(fields.Distro),
	}
	finding.Metadata = codedx.Metadata{
		Values: lo.Map(fields.Metadata, func(field twistlock.MetadataField, _ int) codedx.Value {
			return codedx.Value{Key: field.Key, Text: r.get(field.Column)}
		}),
	}

	if r.err != nil {
		return codedx.Finding{}, r.err
	}
	return finding, nil
}

// toCVE splits a single CVE-<year>-<sequence-number> identifier. Fields holding
// several identifiers are not recognised and split as if they were one.
func (t *transformer) toCVE(line int, id string) (codedx.CVE, error) {
	parts := strings.Split(id, "-")
	if len(parts) < 3 {
		return codedx.CVE{}, &twistlock.MalformedCVEError{Line: line, Value: id}
	}

	return codedx.CVE{
		Year:           parts[1],
		SequenceNumber: parts[2],
	}, nil
}
