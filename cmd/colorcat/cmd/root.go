package cmd

import (
	"fmt"
	"os"

	"github.com/apex/log"
	clihander "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
	cobracolor "github.com/tzhen/go-cobracolor"
)

var (
	verbose bool
	width   int
	height  int
	mode    string
	charset string
)

func init() {
	log.SetHandler(clihander.Default)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")
	rootCmd.PersistentFlags().IntVarP(&width, "width", "w", 0, "Target width in pixels (0 = auto)")
	rootCmd.PersistentFlags().IntVarP(&height, "height", "H", 0, "Target height in pixels (0 = derive from aspect ratio)")
	rootCmd.PersistentFlags().StringVarP(&mode, "mode", "m", "half-color", "Render mode: ascii, color, half-color, gray, half-gray")
	rootCmd.PersistentFlags().StringVarP(&charset, "charset", "c", "", "Brightness ramp for ascii mode, darkest to lightest")

	rootCmd.AddCommand(bannerCmd)
	rootCmd.AddCommand(swatchCmd)
}

// rootCmd renders an image file as character art
var rootCmd = &cobra.Command{
	Use:   "colorcat <image>",
	Short: "Display images in your terminal as character art.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		m, err := cobracolor.ParseMode(mode)
		if err != nil {
			log.Fatalf("Invalid mode: %v", err)
		}

		img, err := cobracolor.Open(args[0])
		if err != nil {
			log.Fatalf("Failed to open image: %v", err)
		}

		log.Debugf("rendering %s as %s (%dx%d)", args[0], m, width, height)

		out, err := img.Width(width).Height(height).Mode(m).Charset(charset).Render()
		if err != nil {
			log.Fatalf("Failed to render image: %v", err)
		}
		fmt.Println(out)
	},
}

// bannerCmd renders text through a font
var bannerCmd = &cobra.Command{
	Use:   "banner <text>",
	Short: "Render text as character art using a bitmap or TTF font.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}

		m, err := cobracolor.ParseMode(mode)
		if err != nil {
			log.Fatalf("Invalid mode: %v", err)
		}

		fontPath, _ := cmd.Flags().GetString("font")
		fontSize, _ := cmd.Flags().GetFloat64("size")

		out, err := cobracolor.Banner(args[0], cobracolor.BannerOptions{
			FontPath:   fontPath,
			FontSize:   fontSize,
			Mode:       m,
			Charset:    charset,
			TrimBorder: true,
		})
		if err != nil {
			log.Fatalf("Failed to render banner: %v", err)
		}
		fmt.Println(out)
	},
}

// swatchCmd prints the 256-color palette, downsampled to what the
// terminal supports
var swatchCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Print a palette swatch matched to the detected color support.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		level := cobracolor.DetectColorLevel()
		fmt.Printf("color support: %s\n", level)

		row := cobracolor.Plaintext("")
		for i := range 256 {
			c := cobracolor.Downsample(cobracolor.Palette(i), level)
			row = row.Append(cobracolor.Ctext("█", c, cobracolor.NoColor))
			if (i+1)%32 == 0 {
				fmt.Println(row.Rich())
				row = cobracolor.Plaintext("")
			}
		}
	},
}

func init() {
	bannerCmd.Flags().String("font", "", "Path to a TTF/OTF font file (default: built-in bitmap font)")
	bannerCmd.Flags().Float64("size", 10, "Font size in points (TTF/OTF only)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
