package utils

import (
	"fmt"
	"reflect"
	"unicode"

	log "github.com/sirupsen/logrus"
)

const maskedValue = "*****"

func PrintConfig(config interface{}) {
	log.Info("Loaded configuration:")
	for _, entry := range ConfigEntries(config) {
		log.Info(entry)
	}
}

// ConfigEntries flattens a config struct into key=value lines.
// Non-empty fields tagged `sensitive:"true"` are masked.
func ConfigEntries(config interface{}) []string {
	var entries []string
	collectStruct(&entries, "", reflect.ValueOf(config))
	return entries
}

func collectStruct(entries *[]string, prefix string, v reflect.Value) {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		key := lowerFirst(field.Name)
		if prefix != "" {
			key = prefix + "." + key
		}
		value := v.Field(i)
		_, isSensitive := field.Tag.Lookup("sensitive")

		if value.Kind() == reflect.Ptr {
			if value.IsNil() {
				*entries = append(*entries, key+"=<nil>")
				continue
			}
			value = value.Elem()
		}

		switch {
		case value.Kind() == reflect.Struct:
			collectStruct(entries, key, value)
		case value.Kind() == reflect.Slice && value.Type().Elem().Kind() == reflect.Struct && value.Len() > 0:
			for j := 0; j < value.Len(); j++ {
				collectStruct(entries, fmt.Sprintf("%s[%d]", key, j), value.Index(j))
			}
		default:
			*entries = append(*entries, key+"="+formatValue(value, isSensitive))
		}
	}
}

func lowerFirst(name string) string {
	runes := []rune(name)
	if len(runes) > 0 {
		runes[0] = unicode.ToLower(runes[0])
	}
	return string(runes)
}

func formatValue(value reflect.Value, isSensitive bool) string {
	if isSensitive && !value.IsZero() {
		return maskedValue
	}
	if value.IsValid() && value.CanInterface() {
		return fmt.Sprintf("%v", value.Interface())
	}
	return ""
}
