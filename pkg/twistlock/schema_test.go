package twistlock

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	testCases := []struct {
		name           string
		input          string
		expectedSchema Schema
		expectedError  string
	}{
		{
			name:           "Should detect host schema",
			input:          "Hostname,Distro,CVE ID\nhost-1,ubuntu,CVE-2023-1\n",
			expectedSchema: HostSchema,
		},
		{
			name:           "Should detect image schema",
			input:          "Registry,Repository,Tag\nregistry.io,library/nginx,latest\n",
			expectedSchema: ImageSchema,
		},
		{
			name:           "Should detect schema of header without data rows",
			input:          "Registry,Repository,Tag\n",
			expectedSchema: ImageSchema,
		},
		{
			name:           "Should ignore byte order mark",
			input:          "\xEF\xBB\xBFHostname,Distro\n",
			expectedSchema: HostSchema,
		},
		{
			name:           "Should detect quoted header",
			input:          "\"Hostname\",\"Distro\"\n",
			expectedSchema: HostSchema,
		},
		{
			name:          "Should return error for unknown first column",
			input:         "Id,Hostname,Distro\n",
			expectedError: `unknown Twistlock CSV schema: first column "Id", expected one of Hostname, Registry`,
		},
		{
			name:          "Should match first column case sensitively",
			input:         "hostname,Distro\n",
			expectedError: `unknown Twistlock CSV schema: first column "hostname", expected one of Hostname, Registry`,
		},
		{
			name:          "Should return error for empty file",
			input:         "",
			expectedError: `unknown Twistlock CSV schema: first column "", expected one of Hostname, Registry`,
		},
		{
			name:          "Should return error for blank first line",
			input:         "\r\nHostname,Distro\nhost-1,ubuntu\n",
			expectedError: `unknown Twistlock CSV schema: first column "", expected one of Hostname, Registry`,
		},
		{
			name:           "Should detect header with stray quote",
			input:          "Hostname,Size 5\" screen\n",
			expectedSchema: HostSchema,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			schema, err := Detect(strings.NewReader(tc.input))
			if tc.expectedError != "" {
				assert.EqualError(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedSchema, schema)
		})
	}
}

func TestLookup_UnknownSchemaError(t *testing.T) {
	_, err := Lookup("Container")

	var schemaErr *UnknownSchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "Container", schemaErr.Column)
	assert.Equal(t, []string{"Hostname", "Registry"}, schemaErr.Known)
}

func TestSchemas_Metadata(t *testing.T) {
	t.Run("Host schema reads lowercase vendor status column", func(t *testing.T) {
		assert.Equal(t, []MetadataField{
			{Key: "CVSS", Column: "CVSS"},
			{Key: "Package Name", Column: "Package Name"},
			{Key: "Package Version", Column: "Package Version"},
			{Key: "Package License", Column: "Package License"},
			{Key: "Vendor Status", Column: "Vendor status"},
		}, HostSchema.Fields.Metadata)
	})

	t.Run("Image schema adds risk factors", func(t *testing.T) {
		assert.Equal(t, []MetadataField{
			{Key: "CVSS", Column: "CVSS"},
			{Key: "Package Name", Column: "Package Name"},
			{Key: "Package Version", Column: "Package Version"},
			{Key: "Package License", Column: "Package License"},
			{Key: "Vendor Status", Column: "Vendor Status"},
			{Key: "Risk Factors", Column: "Risk Factors"},
		}, ImageSchema.Fields.Metadata)
	})

	t.Run("Kinds have readable names", func(t *testing.T) {
		assert.Equal(t, "Vulnerability Hosts", HostSchema.String())
		assert.Equal(t, "Vulnerability Images", ImageSchema.String())
	})
}
