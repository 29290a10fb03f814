package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// decodeHook replaces viper's comma splitting so environment lists keep rgb(r, g, b) intact
var decodeHook = viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
	mapstructure.StringToTimeDurationHookFunc(),
	stringToListHook(),
))

// stringToListHook decodes a single string into []string, splitting on commas outside parentheses
func stringToListHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
			return data, nil
		}
		return splitList(data.(string)), nil
	}
}

func splitList(s string) []string {
	out := []string{}
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = appendItem(out, s[start:i])
				start = i + 1
			}
		}
	}
	return appendItem(out, s[start:])
}

func appendItem(list []string, item string) []string {
	if item = strings.TrimSpace(item); item != "" {
		list = append(list, item)
	}
	return list
}
