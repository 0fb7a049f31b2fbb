package scan

import (
	"bytes"
	"io"
	"os"

	"github.com/codedx/twistlock2codedx/pkg/codedx"
	"github.com/codedx/twistlock2codedx/pkg/ext"
	"github.com/codedx/twistlock2codedx/pkg/metrics"
	"github.com/codedx/twistlock2codedx/pkg/twistlock"
	log "github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

const reportFileMode os.FileMode = 0644

// Controller wraps the Convert method.
// Convert maps the given Twistlock CSV files, in order, into a single Code Dx report written to output.
// The first error aborts the conversion and output is left untouched.
type Controller interface {
	Convert(inputFiles []string, output string) error
}

type controller struct {
	ambassador  ext.Ambassador
	transformer Transformer
	collector   *metrics.Collector
}

func NewController(ambassador ext.Ambassador, transformer Transformer, collector *metrics.Collector) Controller {
	return &controller{
		ambassador:  ambassador,
		transformer: transformer,
		collector:   collector,
	}
}

func (c *controller) Convert(inputFiles []string, output string) error {
	log.WithField("files", len(inputFiles)).Info("Loading Twistlock CSV files")

	assembler := NewAssembler()
	for _, path := range inputFiles {
		findings, err := c.convertFile(path)
		if err != nil {
			return xerrors.Errorf("processing %s: %w", path, err)
		}
		assembler.Add(findings...)
	}

	report := c.transformer.Report(assembler.Findings())

	var buf bytes.Buffer
	if err := codedx.Encode(&buf, report); err != nil {
		return err
	}
	if err := c.ambassador.WriteFile(output, buf.Bytes(), reportFileMode); err != nil {
		return newIOError("write", output, err)
	}

	log.WithFields(log.Fields{
		"output":   output,
		"findings": assembler.Len(),
		"date":     report.Date,
	}).Info("Code Dx report written")
	return nil
}

func (c *controller) convertFile(path string) ([]codedx.Finding, error) {
	log.WithField("file", path).Info("Processing file")

	schema, err := c.detect(path)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"file":   path,
		"schema": schema.String(),
	}).Info("Detected Twistlock CSV file")

	findings, err := c.mapFile(path, schema)
	if err != nil {
		return nil, err
	}

	c.collector.FileProcessed(schema.Kind.Label())
	for _, finding := range findings {
		c.collector.FindingMapped(schema.Kind.Label(), finding.Severity)
	}
	log.WithFields(log.Fields{
		"file":     path,
		"findings": len(findings),
	}).Debug("Mapped file")

	return findings, nil
}

func (c *controller) detect(path string) (schema twistlock.Schema, err error) {
	f, err := c.ambassador.Open(path)
	if err != nil {
		return schema, newIOError("open", path, err)
	}
	defer c.close(path, f)

	return twistlock.Detect(f)
}

func (c *controller) mapFile(path string, schema twistlock.Schema) ([]codedx.Finding, error) {
	f, err := c.ambassador.Open(path)
	if err != nil {
		return nil, newIOError("open", path, err)
	}
	defer c.close(path, f)

	reader, err := twistlock.NewReader(f)
	if err != nil {
		return nil, err
	}

	return c.transformer.Transform(schema, reader)
}

func (c *controller) close(path string, f io.Closer) {
	if err := f.Close(); err != nil {
		log.WithError(err).WithField("file", path).Warn("Error while closing file")
	}
}
