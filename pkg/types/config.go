package types

// DefaultPassword is tried on every archive when no password is configured.
const DefaultPassword = "infected"

// DefaultDPI is the pdf-2-png rendering resolution when none is given.
const DefaultDPI = 600

// StrategyKind selects how archives are extracted.
type StrategyKind string

const (
	// StrategyAuto picks the native tool on darwin and linux, the library elsewhere.
	StrategyAuto    StrategyKind = "auto"
	StrategyNative  StrategyKind = "native"
	StrategyLibrary StrategyKind = "library"
)

// UnzipConfig holds settings for an extraction run.
type UnzipConfig struct {
	// Folder is the root directory to scan for archives.
	Folder string `json:"folder" yaml:"folder"`

	// Password is applied to every archive.
	Password string `json:"-" yaml:"-"`

	// Remove enables the post-extraction deletion prompt.
	Remove bool `json:"remove" yaml:"remove"`

	// Strategy selects native, library, or platform-based extraction.
	Strategy StrategyKind `json:"strategy" yaml:"strategy"`

	// UnzipBin is the native extraction executable (default "unzip").
	UnzipBin string `json:"unzip_bin" yaml:"unzip_bin"`

	// ReportPath, when set, receives a YAML RunSummary.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// ScaffoldConfig holds settings for scaffolding mode.
type ScaffoldConfig struct {
	// Base is the skeleton root (default "Quarantine").
	Base string `json:"base" yaml:"base"`

	// Names are created under Resources and ResourceData.
	Names []string `json:"names" yaml:"names"`
}

// RasterConfig holds settings for pdf-2-png.
type RasterConfig struct {
	// Input is the PDF to render.
	Input string `json:"input" yaml:"input"`

	// OutputDir receives one PNG per page.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// DPI is the rendering resolution (default 600).
	DPI int `json:"dpi" yaml:"dpi"`

	// PdftoppmBin is the rasterizer executable (default "pdftoppm").
	PdftoppmBin string `json:"pdftoppm_bin" yaml:"pdftoppm_bin"`
}
