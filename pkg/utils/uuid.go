package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	snapshotIDLength = 10
)

// GenerateID gera o identificador curto usado nos snapshots de agregação
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, snapshotIDLength)
}
