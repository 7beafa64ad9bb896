package vendordoc

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Placeholder tokens substituted in top-level paragraphs.
const (
	ClientNameToken = "[CLIENT_NAME]"
	VendorNameToken = "[VENDOR_NAME]"
)

// Request is the input of one document generation.
type Request struct {
	ClientName      string `json:"client_name"`
	VendorName      string `json:"vendor_name"`
	DealDescription string `json:"deal_description,omitempty"`
	ResearchData    Record `json:"research_data"`
}

// Validate reports missing required fields.
func (r Request) Validate() error {
	var missing []string
	if strings.TrimSpace(r.ClientName) == "" {
		missing = append(missing, "client_name")
	}
	if strings.TrimSpace(r.VendorName) == "" {
		missing = append(missing, "vendor_name")
	}
	if len(r.ResearchData) == 0 {
		missing = append(missing, "research_data")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Generator builds vendor profile documents from requests.
type Generator struct {
	locator   Locator
	populator *Populator
	tempDir   string
	log       *zap.Logger
}

// NewGenerator wires a Generator. An empty tempDir means os.TempDir().
func NewGenerator(locator Locator, opts Options, tempDir string, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Generator{
		locator:   locator,
		populator: NewPopulator(opts, log.Named("populate")),
		tempDir:   tempDir,
		log:       log,
	}
}

// Build validates req, opens a fresh copy of the template and populates it.
func (g *Generator) Build(ctx context.Context, req Request) (*Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, path, err := g.locator.Load()
	if err != nil {
		return nil, err
	}
	g.log.Debug("template loaded", zap.String("path", path))

	rec := req.ResearchData.Clone()
	rec[FieldDealDescription] = req.DealDescription

	g.populator.Populate(doc, rec, req.ClientName)
	ReplacePlaceholders(doc, []Substitution{
		{Token: ClientNameToken, Value: req.ClientName},
		{Token: VendorNameToken, Value: req.VendorName},
	})
	return doc, nil
}

// RenderTo builds the document for req and writes it to w.
func (g *Generator) RenderTo(ctx context.Context, req Request, w io.Writer) error {
	doc, err := g.Build(ctx, req)
	if err != nil {
		return err
	}
	if err := doc.Save(w); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// Generate builds the document for req and saves it under the temp dir. The
// caller owns the returned file and should remove it once delivered.
func (g *Generator) Generate(ctx context.Context, req Request) (string, error) {
	doc, err := g.Build(ctx, req)
	if err != nil {
		return "", err
	}

	name := SafeFilename(fmt.Sprintf("Generated_%s_%s_%s", req.ClientName, req.VendorName, uuid.NewString())) + ".docx"
	path := filepath.Join(g.tempDir, name)
	if err := doc.SaveFile(path); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("save document: %w", err)
	}
	g.log.Info("document generated",
		zap.String("client", req.ClientName),
		zap.String("vendor", req.VendorName),
		zap.String("path", path),
	)
	return path, nil
}

var (
	unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	filenameSeparators  = regexp.MustCompile(`[\s_]+`)
)

// SafeFilename strips characters that are invalid in file names and collapses
// whitespace and underscore runs into a single underscore.
func SafeFilename(name string) string {
	s := unsafeFilenameChars.ReplaceAllString(name, "")
	s = filenameSeparators.ReplaceAllString(s, "_")
	return strings.Trim(s, " _")
}

// DownloadName is the attachment name offered to clients.
func DownloadName(clientName, vendorName string) string {
	return SafeFilename(fmt.Sprintf("%s_%s_MOA", clientName, vendorName)) + ".docx"
}
