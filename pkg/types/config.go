package types

// Rasterizer identifies the backend that turns PDF pages into images for OCR.
type Rasterizer string

const (
	// RasterizerPDFCPU extracts the embedded scan image(s) of each page.
	RasterizerPDFCPU Rasterizer = "pdfcpu"
	// RasterizerPdftoppm renders each page with poppler's pdftoppm.
	RasterizerPdftoppm Rasterizer = "pdftoppm"
)

// OCRConfig holds settings for the OCR stage.
type OCRConfig struct {
	// OutputDir receives one .txt file per processed PDF (default "ocr_output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// ProcessedDir receives the source PDFs after OCR (default "ocr_processed_pdfs").
	ProcessedDir string `json:"processed_dir" yaml:"processed_dir"`

	// Language is the tesseract language, e.g. "eng" or "eng+spa".
	Language string `json:"language" yaml:"language"`

	// PageSegMode is the tesseract page segmentation mode (0-13, default 3).
	PageSegMode int `json:"page_seg_mode" yaml:"page_seg_mode"`

	// Rasterizer selects how pages become images: pdfcpu or pdftoppm.
	Rasterizer Rasterizer `json:"rasterizer" yaml:"rasterizer"`

	// DPI is the render resolution used by the pdftoppm rasterizer (default 300).
	DPI int `json:"dpi" yaml:"dpi"`
}

// DefaultOCRConfig returns the OCR settings used when nothing is configured.
func DefaultOCRConfig() OCRConfig {
	return OCRConfig{
		OutputDir:    "ocr_output",
		ProcessedDir: "ocr_processed_pdfs",
		Language:     "eng",
		PageSegMode:  3,
		Rasterizer:   RasterizerPDFCPU,
		DPI:          300,
	}
}

// OutputFormat selects how a scan result is printed.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ScanConfig holds settings for a directory scan.
type ScanConfig struct {
	// Directory is the directory whose PDFs are classified (default "./").
	Directory string `json:"directory" yaml:"directory"`

	// Format selects the result encoding.
	Format OutputFormat `json:"format" yaml:"format"`

	// AssumeYes skips the merge confirmation prompt.
	AssumeYes bool `json:"assume_yes" yaml:"assume_yes"`
}
