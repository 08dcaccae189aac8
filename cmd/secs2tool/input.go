package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/go-secs-item/internal/util"
)

// readInput joins args, or reads r when args is empty or "-".
func readInput(r io.Reader, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return string(data), nil
	}

	return strings.Join(args, " "), nil
}

func readHexInput(r io.Reader, args []string) ([]byte, error) {
	text, err := readInput(r, args)
	if err != nil {
		return nil, err
	}

	data, err := util.DecodeHex(text)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	return data, nil
}
