// Package humancfg plugs the literal parsers into mapstructure-based
// configuration decoding, as used by viper. With the hook installed, a
// config field typed bytesize.Bytes, time.Duration or rfc3339.Time
// decodes from its textual literal form.
package humancfg

import (
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/ngrash/go-human/bytesize"
	"github.com/ngrash/go-human/duration"
	"github.com/ngrash/go-human/rfc3339"
)

var (
	bytesType    = reflect.TypeOf(bytesize.Bytes(0))
	durationType = reflect.TypeOf(time.Duration(0))
	timeType     = reflect.TypeOf(rfc3339.Time{})
)

// DecodeHook returns a mapstructure hook that parses string values
// into bytesize.Bytes, time.Duration and rfc3339.Time. Non-string
// sources and other target types pass through untouched. Parse
// failures abort decoding with the parser's error kind.
func DecodeHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		s := data.(string)
		switch to {
		case bytesType:
			return bytesize.Parse(s)
		case durationType:
			return duration.Parse(s)
		case timeType:
			return rfc3339.Parse(s)
		default:
			return data, nil
		}
	}
}
