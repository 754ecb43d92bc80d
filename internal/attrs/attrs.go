// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lingodiff/lingodiff/internal/log"
)

var lengthRegex = regexp.MustCompile(`-?\d+`)

// Attr is one column of a command's rows. Key is the path into each row and
// OutputKey is the column title and the key used in json and yaml output.
type Attr struct {
	Key string `yaml:"key" json:"Key"`
	// Include is false for columns that only exist for filtering and sorting.
	Include       bool   `yaml:"include" json:"Include"`
	OutputKey     string `yaml:"outputKey" json:"OutputKey"`
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

// Transform applies the attribute's transform spec to a value and returns the
// transformed result. Numbers honor b (human bytes) and n (thousands
// separators). Strings honor l/u (case) and a length, where a negative length
// elides the middle of the value.
func (a *Attr) Transform(value interface{}) interface{} {
	if a.TransformSpec == "" {
		return value
	}

	if num, ok := value.(float64); ok {
		return a.transformNumber(num)
	}

	result, ok := value.(string)
	if !ok {
		log.Tracef("untransformable value: value=%v", value)
		return value
	}

	// The last case letter wins so an attr's own spec overrides a global one,
	// e.g. --attrs '*::U,key::l' is lower case.
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")
	if lastL > lastU {
		result = strings.ToLower(result)
		log.Tracef("case lower: result=%s", result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
		log.Tracef("case upper: result=%s", result)
	}

	// Same rule for length, the last one is the most specific.
	match := lengthRegex.FindAllString(a.TransformSpec, -1)
	if len(match) == 0 {
		return result
	}
	l, _ := strconv.Atoi(match[len(match)-1])
	return truncate(result, l)
}

func (a *Attr) transformNumber(num float64) interface{} {
	lastB := strings.LastIndexAny(a.TransformSpec, "bB")
	lastN := strings.LastIndexAny(a.TransformSpec, "nN")
	switch {
	case lastB > lastN && num >= 0:
		return humanize.Bytes(uint64(num))
	case lastN > lastB:
		return humanize.Commaf(num)
	}
	return num
}

// truncate shortens s to at most |l| runes. A negative l keeps both ends and
// joins them with "..".
func truncate(s string, l int) string {
	runes := []rune(s)
	abs := int(math.Abs(float64(l)))
	if len(runes) <= abs {
		return s
	}
	if l >= 0 {
		log.Tracef("length trunc: len=%d", l)
		return string(runes[:l])
	}
	side := abs/2 - 1
	if side < 1 {
		side = 1
	}
	log.Tracef("length middle: side=%d", side)
	return string(runes[:side]) + ".." + string(runes[len(runes)-side:])
}

// AttrList is a collection of Attr used to shape output fields.
type AttrList []Attr

// Set parses each spec from --attrs and adds it to the AttrList. A spec is
// key:outputKey:transform where the last two are optional. A leading ! keeps
// the column for filtering and sorting but leaves it out of the output. The
// key * carries a transform applied to every column.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		return nil
	}

	const (
		keyIdx = iota
		outputIdx
		transformIdx
	)

	specs := strings.Split(value, ",")
	log.Debugf("specs split: specs=%v", specs)
specloop:
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}

		attr := Attr{Include: true}
		fields := strings.Split(spec, ":")

		attr.Key = strings.TrimSpace(fields[keyIdx])
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}
		if attr.Key == "" {
			return fmt.Errorf("invalid attr spec: %q", spec)
		}
		if attr.Key == "*" {
			attr.Include = false
		}

		// A bare key is titled by its last path segment.
		switch {
		case len(fields) == 1:
			segments := strings.Split(attr.Key, ".")
			attr.OutputKey = segments[len(segments)-1]
		case strings.TrimSpace(fields[outputIdx]) != "":
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		default:
			attr.OutputKey = attr.Key
		}

		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}
		log.Tracef("attr parsed: %+v", attr)

		// Restating a default column (or repeating one) updates it in place so
		// the column keeps its position.
		for i := range *a {
			if (*a)[i].Key == attr.Key || (*a)[i].OutputKey == attr.Key {
				(*a)[i].Include = attr.Include
				(*a)[i].OutputKey = attr.OutputKey
				(*a)[i].TransformSpec = attr.TransformSpec
				log.Tracef("existing updated: i=%d", i)
				continue specloop
			}
		}

		*a = append(*a, attr)
	}

	return nil
}

// SetGlobalTransformSpec prepends the * attr's transform spec, if any, to
// every attr in the list.
func (a *AttrList) SetGlobalTransformSpec() error {
	spec := ""
	for i := range *a {
		if (*a)[i].Key == "*" {
			spec = (*a)[i].TransformSpec
			break
		}
	}
	if spec == "" {
		return nil
	}

	for i := range *a {
		(*a)[i].TransformSpec = spec + "," + (*a)[i].TransformSpec
	}
	log.Debugf("global spec prepended: spec=%s", spec)

	return nil
}

// Included returns the attrs that are rendered, in order.
func (a AttrList) Included() AttrList {
	out := make(AttrList, 0, len(a))
	for _, attr := range a {
		if attr.Include {
			out = append(out, attr)
		}
	}
	return out
}

// String returns the list in --attrs syntax.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Type returns the flag type for use with the flag.Value interface.
func (a *AttrList) Type() string { return "list" }
