package service

import "colorant-og/models"

// TokenDecoderInterface defines the contract for share token decoding
type TokenDecoderInterface interface {
	Decode(raw string) (map[string]any, bool)
	DecodeShareToken(raw string) *models.ShareToken
}
