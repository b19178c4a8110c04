package cfg

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Cfg is the immutable run configuration: input file paths, thresholds, and
// output locations. Everything is supplied per invocation; the tool keeps no
// state between runs.
type Cfg struct {
	PromoPath  string `long:"promo" env:"PROMO_FILE" description:"Offline promo list workbook" required:"true"`
	MasterPath string `long:"master" env:"MASTER_FILE" description:"Online master catalog workbook" required:"true"`

	ShopeeCatalogs []string `long:"shopee-db" description:"Shopee product database workbook (repeatable)"`
	TikTokCatalogs []string `long:"tiktok-db" description:"TikTok product database workbook (repeatable)"`

	ShopeeTemplate  string `long:"shopee-template" description:"Shopee promo upload template"`
	TikTokTemplate1 string `long:"tiktok-template1" description:"TikTok promo upload template (method 1, per variant)"`
	TikTokTemplate2 string `long:"tiktok-template2" description:"TikTok promo upload template (method 2, per product)"`

	OutputDir string `long:"out-dir" env:"OUT_DIR" default:"." description:"Directory for generated reports"`

	MinPrice         int64   `long:"min-price" env:"MIN_PRICE" default:"1000" description:"Minimum allowed final promotional price"`
	MaxDiscountRatio float64 `long:"max-discount-ratio" env:"MAX_DISCOUNT_RATIO" default:"0.90" description:"Maximum allowed discount ratio"`

	PlatformsFile string `long:"platforms" env:"PLATFORMS_FILE" description:"Optional YAML file overriding the built-in platform definitions"`
	SummaryJSON   string `long:"summary-json" env:"SUMMARY_JSON" description:"Optional path for a machine-readable run summary"`

	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses configuration from args (flags) and the environment. Returns
// (nil, nil) when help was requested.
func Load(args []string) (*Cfg, error) {
	var cfg Cfg

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &cfg, nil
}
