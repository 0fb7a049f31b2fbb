package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()

	c.FileProcessed("host")
	c.FileProcessed("host")
	c.FileProcessed("image")
	c.FindingMapped("host", "high")
	c.FindingMapped("host", "high")
	c.FindingMapped("image", "low")

	assert.Equal(t, float64(2), testutil.ToFloat64(c.filesProcessed.WithLabelValues("host")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.filesProcessed.WithLabelValues("image")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.findings.WithLabelValues("host", "high")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.findings.WithLabelValues("image", "low")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.findings))
}

func TestCollector_WriteToTextfile(t *testing.T) {
	c := NewCollector()
	c.FileProcessed("image")
	c.FindingMapped("image", "critical")

	path := filepath.Join(t.TempDir(), "twistlock2codedx.prom")
	require.NoError(t, c.WriteToTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `twistlock2codedx_files_processed_total{schema="image"} 1`)
	assert.Contains(t, string(data), `twistlock2codedx_findings_total{schema="image",severity="critical"} 1`)
}

func TestCollector_WriteToTextfile_Error(t *testing.T) {
	c := NewCollector()

	err := c.WriteToTextfile(filepath.Join(t.TempDir(), "missing", "metrics.prom"))
	assert.Error(t, err)
}
