package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"axlab.dev/variant/pkg/compare"
	"axlab.dev/variant/pkg/script"
	"axlab.dev/variant/pkg/variant"
)

func checkDocument(ctx *cli.Context) error {
	op, ok := compare.ParseOp(ctx.String("op"))
	if !ok {
		return fmt.Errorf("check: invalid operator `%s`", ctx.String("op"))
	}

	lit, err := script.ParseLiteral(ctx.String("literal"))
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	file := ctx.String("doc")
	doc, err := readDocument(file, ctx.String("format"))
	if err != nil {
		return err
	}
	logger.Debug().Str("file", file).Str("value", doc.Debug()).Msg("decoded document")

	value, err := selectPath(doc, ctx.String("path"))
	if err != nil {
		return fmt.Errorf("check %s: %w", file, err)
	}

	result := compare.Eval(value, op, lit)
	fmt.Fprintf(ctx.App.Writer, "%s %s %s => %t\n", value, op, lit, result)
	if !result {
		return ErrFalse
	}
	return nil
}

func readDocument(file, format string) (variant.Value, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return variant.Null(), err
	}

	if format == "" {
		switch strings.ToLower(filepath.Ext(file)) {
		case ".msgpack", ".mp":
			format = "msgpack"
		default:
			format = "yaml"
		}
	}

	var value variant.Value
	switch format {
	case "yaml", "json":
		value, err = variant.DecodeYAML(data)
	case "msgpack":
		value, err = variant.DecodeMsgpack(data)
	default:
		return variant.Null(), fmt.Errorf("invalid document format `%s`", format)
	}
	if err != nil {
		return variant.Null(), fmt.Errorf("%s: %w", file, err)
	}
	return value, nil
}

// selectPath walks object keys and array indexes separated by dots.
func selectPath(value variant.Value, path string) (variant.Value, error) {
	if path == "" {
		return value, nil
	}

	for _, key := range strings.Split(path, ".") {
		switch value.Tag() {
		case variant.TagObject:
			member, ok := value.AsObject().Get(key)
			if !ok {
				return variant.Null(), fmt.Errorf("member `%s` not found", key)
			}
			value = member
		case variant.TagArray:
			index, err := strconv.Atoi(key)
			items := value.AsArray()
			if err != nil || index < 0 || index >= items.Len() {
				return variant.Null(), fmt.Errorf("invalid index `%s` for array of %d", key, items.Len())
			}
			value = items.At(index)
		default:
			return variant.Null(), fmt.Errorf("cannot select `%s` in %s", key, value.Tag())
		}
	}
	return value, nil
}
