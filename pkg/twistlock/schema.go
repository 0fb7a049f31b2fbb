package twistlock

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/xerrors"
)

// Kind identifies one of the Twistlock CSV export layouts.
type Kind int

const (
	_ Kind = iota
	KindHost
	KindImage
)

func (k Kind) String() string {
	return kindToString[k]
}

// Label is the short name of the kind used in metric labels.
func (k Kind) Label() string {
	return kindToLabel[k]
}

var kindToString = map[Kind]string{
	KindHost:  "Vulnerability Hosts",
	KindImage: "Vulnerability Images",
}

var kindToLabel = map[Kind]string{
	KindHost:  "host",
	KindImage: "image",
}

// MetadataField binds an output metadata key to the CSV column it is read from.
type MetadataField struct {
	Key    string
	Column string
}

// Fields names the CSV columns a finding is built from.
type Fields struct {
	Severity     string
	Description  string
	Type         string
	ComplianceID string
	CVEID        string
	Hostname     string
	Distro       string
	Metadata     []MetadataField
}

// Schema is a known CSV layout: the first header column that identifies it
// and the columns its rows are mapped from.
type Schema struct {
	Kind   Kind
	Key    string
	Fields Fields
}

func (s Schema) String() string {
	return s.Kind.String()
}

func commonFields(vendorStatusColumn string, extra ...MetadataField) Fields {
	metadata := []MetadataField{
		{Key: "CVSS", Column: "CVSS"},
		{Key: "Package Name", Column: "Package Name"},
		{Key: "Package Version", Column: "Package Version"},
		{Key: "Package License", Column: "Package License"},
		{Key: "Vendor Status", Column: vendorStatusColumn},
	}

	return Fields{
		Severity:     "Severity",
		Description:  "Description",
		Type:         "Type",
		ComplianceID: "Compliance ID",
		CVEID:        "CVE ID",
		Hostname:     "Hostname",
		Distro:       "Distro",
		Metadata:     append(metadata, extra...),
	}
}

var (
	// HostSchema is the host vulnerabilities export. Its vendor status column is
	// spelled "Vendor status".
	HostSchema = Schema{
		Kind:   KindHost,
		Key:    "Hostname",
		Fields: commonFields("Vendor status"),
	}

	// ImageSchema is the image vulnerabilities export.
	ImageSchema = Schema{
		Kind:   KindImage,
		Key:    "Registry",
		Fields: commonFields("Vendor Status", MetadataField{Key: "Risk Factors", Column: "Risk Factors"}),
	}
)

var schemas = map[string]Schema{
	HostSchema.Key:  HostSchema,
	ImageSchema.Key: ImageSchema,
}

// Lookup returns the schema whose header starts with the given column name.
func Lookup(column string) (Schema, error) {
	if schema, ok := schemas[column]; ok {
		return schema, nil
	}
	return Schema{}, &UnknownSchemaError{Column: column, Known: knownKeys()}
}

func knownKeys() []string {
	keys := lo.Keys(schemas)
	sort.Strings(keys)
	return keys
}

// Detect reads the first line of r and returns the schema keyed by its first column.
// Data rows are left unread. An empty or blank first line is an unknown schema.
func Detect(r io.Reader) (Schema, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return Schema{}, xerrors.Errorf("reading header: %w", err)
	}
	line = strings.TrimPrefix(strings.TrimRight(line, "\r\n"), utf8BOM)

	column := strings.SplitN(line, ",", 2)[0]
	if fields, err := newCSVReader(strings.NewReader(line)).Read(); err == nil {
		column = fields[0]
	}
	return Lookup(column)
}
