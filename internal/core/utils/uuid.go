package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/vantrou/memnode/internal/engine/config"
)

func NewUUIDRaw(length int) ([]byte, error) {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return bytes, errors.New("failed to generate UUID: " + err.Error())
	}
	return bytes, nil
}

func NewUUID(length int) (string, error) {
	data, err := NewUUIDRaw(length)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}

func NewUUID32() (string, error) {
	return NewUUID(config.UUIDLength)
}
