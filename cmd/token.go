package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"colorant-og/lzstring"
	"colorant-og/models"
	"colorant-og/service"
)

var (
	tokenPrimary    string
	tokenCustom     string
	tokenCustomName string
	tokenSecondary  []string
	tokenPattern    string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Encode and decode share tokens",
}

var tokenEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build a share token from dye IDs or a custom color",
	Example: `  colorant-og token encode --primary dye_12 --secondary dye_7,dye_9 --pattern triadic
  colorant-og token encode --custom 255,0,0 --name Red --secondary dye_7,dye_9`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		obj, err := buildTokenObject(tokenPrimary, tokenCustom, tokenCustomName, tokenSecondary, tokenPattern)
		if err != nil {
			return err
		}
		token, err := EncodeToken(obj)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var tokenDecodeCmd = &cobra.Command{
	Use:   "decode <token>",
	Short: "Print the palette selection carried by a share token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return describeToken(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	tokenEncodeCmd.Flags().StringVar(&tokenPrimary, "primary", "", "primary dye ID")
	tokenEncodeCmd.Flags().StringVar(&tokenCustom, "custom", "", "custom primary color as r,g,b")
	tokenEncodeCmd.Flags().StringVar(&tokenCustomName, "name", "", "name of the custom primary color")
	tokenEncodeCmd.Flags().StringSliceVar(&tokenSecondary, "secondary", nil, "secondary dye IDs (up to two)")
	tokenEncodeCmd.Flags().StringVar(&tokenPattern, "pattern", "", "harmony pattern key")
	tokenEncodeCmd.MarkFlagsMutuallyExclusive("primary", "custom")

	tokenCmd.AddCommand(tokenEncodeCmd, tokenDecodeCmd)
	rootCmd.AddCommand(tokenCmd)
}

// EncodeToken serializes obj and compresses it into a URL-safe share token
func EncodeToken(obj map[string]any) (string, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("marshal token: %w", err)
	}
	return lzstring.CompressToEncodedURIComponent(string(data)), nil
}

func buildTokenObject(primary, custom, customName string, secondary []string, pattern string) (map[string]any, error) {
	if len(secondary) > 2 {
		return nil, errors.New("at most two secondary dyes are allowed")
	}

	obj := map[string]any{}
	switch {
	case custom != "":
		rgb, err := parseRGB(custom)
		if err != nil {
			return nil, err
		}
		obj["p"] = map[string]any{
			"type": "custom",
			"name": customName,
			"rgb":  map[string]int{"r": rgb.R, "g": rgb.G, "b": rgb.B},
		}
	case primary != "":
		obj["p"] = primary
	}
	if len(secondary) > 0 {
		obj["s"] = secondary
	}
	if pattern != "" {
		obj["pt"] = pattern
	}
	return obj, nil
}

func parseRGB(s string) (models.RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return models.RGB{}, fmt.Errorf("custom color %q: expected r,g,b", s)
	}
	var channels [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 || v > 255 {
			return models.RGB{}, fmt.Errorf("custom color %q: channel %q must be 0-255", s, part)
		}
		channels[i] = v
	}
	return models.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func describeToken(out io.Writer, raw string) error {
	obj, ok := service.NewTokenDecoder(zap.NewNop()).Decode(raw)
	if !ok {
		return errors.New("token could not be decoded")
	}

	pretty, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(pretty))

	token := models.ParseShareToken(obj)
	fmt.Fprintf(out, "primary: %s\n", token.Kind)
	if token.Pattern != "" {
		fmt.Fprintf(out, "pattern: %s (%s)\n", token.Pattern, models.PatternLabel(token.Pattern))
	}
	return nil
}
