package service

import (
	"encoding/json"

	"go.uber.org/zap"

	"colorant-og/lzstring"
	"colorant-og/models"
	"colorant-og/utils"
)

const (
	// MaxTokenLength caps the compressed token so attacker-controlled
	// parameters cannot feed large inputs to the decompressor
	MaxTokenLength = 2048
	// MaxPayloadLength caps the decompressed JSON, bounding the amplification ratio
	MaxPayloadLength = 10000
)

// Decompressor reverses the URL-safe token compression
type Decompressor func(string) (string, error)

// TokenDecoder turns a share token into a parsed JSON object
// Implements TokenDecoderInterface
type TokenDecoder struct {
	decompress Decompressor
	logger     *zap.Logger
}

// NewTokenDecoder creates a decoder using the lz-string URI component codec.
// Decompression stops as soon as the output passes MaxPayloadLength.
func NewTokenDecoder(logger *zap.Logger) *TokenDecoder {
	return NewTokenDecoderWith(func(raw string) (string, error) {
		return lzstring.DecompressFromEncodedURIComponentLimit(raw, MaxPayloadLength)
	}, logger)
}

// NewTokenDecoderWith creates a decoder with a custom decompressor
func NewTokenDecoderWith(decompress Decompressor, logger *zap.Logger) *TokenDecoder {
	return &TokenDecoder{
		decompress: decompress,
		logger:     logger,
	}
}

// Ensure TokenDecoder implements TokenDecoderInterface
var _ TokenDecoderInterface = (*TokenDecoder)(nil)

// Decode validates and decompresses raw and parses it as a JSON object.
// The boolean is false whenever any stage rejects the input.
func (d *TokenDecoder) Decode(raw string) (map[string]any, bool) {
	if raw == "" || lzstring.UTF16Len(raw) > MaxTokenLength {
		d.logger.Info("Parameter too long or empty", zap.Int("length", lzstring.UTF16Len(raw)))
		return nil, false
	}

	payload, err := d.decompress(raw)
	if err != nil || payload == "" || lzstring.UTF16Len(payload) > MaxPayloadLength {
		d.logger.Info("Failed to decompress or decompressed data too large",
			zap.String("compressed", utils.Preview(raw, 50)),
			zap.String("decompressed", utils.Preview(payload, 100)),
			zap.Int("decompressedLength", lzstring.UTF16Len(payload)),
			zap.Error(err))
		return nil, false
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(payload), &obj); err != nil || obj == nil {
		d.logger.Info("JSON parse error", zap.String("payload", utils.Preview(payload, 100)), zap.Error(err))
		return nil, false
	}
	return obj, true
}

// DecodeShareToken decodes raw into a ShareToken, or nil when it is unusable
func (d *TokenDecoder) DecodeShareToken(raw string) *models.ShareToken {
	obj, ok := d.Decode(raw)
	if !ok {
		return nil
	}
	return models.ParseShareToken(obj)
}
