// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// IDGenerator produces unique note identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator generates note ids as UUID strings. Version 7 is preferred
// because its ids sort by creation time; version 4 is used when the v7
// source fails.
type UUIDGenerator struct{}

// NewUUIDGenerator returns a ready-to-use [UUIDGenerator].
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new unique id.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
