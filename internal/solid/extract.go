package solid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Report field names. A report looks like:
//
//	{"objects": {"Body": {"solids": [
//	    {"object_name": "Body", "index": 0, "metrics": {"volume_mm3": 1000.0}}
//	]}}}
const (
	fieldObjects    = "objects"
	fieldSolids     = "solids"
	fieldObjectName = "object_name"
	fieldIndex      = "index"
	fieldMetrics    = "metrics"
	fieldVolume     = "volume_mm3"
)

// RejectReason names why a report entry did not make it into the VolumeMap.
type RejectReason string

const (
	RejectReportNotObject  RejectReason = "report_not_object"
	RejectObjectsNotObject RejectReason = "objects_not_object"
	RejectObjectNotObject  RejectReason = "object_not_object"
	RejectSolidsNotArray   RejectReason = "solids_not_array"
	RejectSolidNotObject   RejectReason = "solid_not_object"
	RejectNameNotString    RejectReason = "name_not_string"
	RejectIndexNotInteger  RejectReason = "index_not_integer"
	RejectIndexNegative    RejectReason = "index_negative"
	RejectMetricsNotObject RejectReason = "metrics_not_object"
	RejectVolumeNotNumber  RejectReason = "volume_not_number"

	// RejectDuplicateKey is informational: the later entry replaces the
	// earlier one in the map.
	RejectDuplicateKey RejectReason = "duplicate_key"
)

// Rejection records one skipped report entry.
type Rejection struct {
	Object   string       // enclosing object key, empty for report-level rejections
	Position int          // position in the solids array, -1 for object-level rejections
	Reason   RejectReason
}

func (r Rejection) String() string {
	switch {
	case r.Object == "":
		return string(r.Reason)
	case r.Position < 0:
		return fmt.Sprintf("objects[%q]: %s", r.Object, r.Reason)
	default:
		return fmt.Sprintf("objects[%q].solids[%d]: %s", r.Object, r.Position, r.Reason)
	}
}

// Extract builds the VolumeMap of a report. It never fails: malformed entries
// are skipped and a report that is not a JSON object yields an empty map.
func Extract(report gjson.Result) VolumeMap {
	m, _ := ExtractWithRejections(report)
	return m
}

// ExtractBytes parses raw JSON and extracts its VolumeMap.
func ExtractBytes(data []byte) VolumeMap {
	return Extract(gjson.ParseBytes(data))
}

// ExtractWithRejections is Extract plus the list of every entry it skipped,
// in document order.
func ExtractWithRejections(report gjson.Result) (VolumeMap, []Rejection) {
	out := make(VolumeMap)
	var rejected []Rejection

	if !report.IsObject() {
		return out, append(rejected, Rejection{Position: -1, Reason: RejectReportNotObject})
	}

	objects := report.Get(fieldObjects)
	if !objects.Exists() {
		return out, nil
	}
	if !objects.IsObject() {
		return out, append(rejected, Rejection{Position: -1, Reason: RejectObjectsNotObject})
	}

	// ForEach walks keys in document order, which makes last-write-wins on
	// duplicate keys reproducible.
	objects.ForEach(func(name, entry gjson.Result) bool {
		objName := name.String()
		if !entry.IsObject() {
			rejected = append(rejected, Rejection{Object: objName, Position: -1, Reason: RejectObjectNotObject})
			return true
		}

		solids := entry.Get(fieldSolids)
		if !solids.Exists() {
			return true
		}
		if !solids.IsArray() {
			rejected = append(rejected, Rejection{Object: objName, Position: -1, Reason: RejectSolidsNotArray})
			return true
		}

		pos := 0
		solids.ForEach(func(_, s gjson.Result) bool {
			key, volume, reason := parseSolid(objName, s)
			switch {
			case reason != "":
				rejected = append(rejected, Rejection{Object: objName, Position: pos, Reason: reason})
			default:
				if _, dup := out[key]; dup {
					rejected = append(rejected, Rejection{Object: objName, Position: pos, Reason: RejectDuplicateKey})
				}
				out[key] = volume
			}
			pos++
			return true
		})
		return true
	})

	return out, rejected
}

// parseSolid converts one solids[] entry. A non-empty reason means the entry
// is skipped.
func parseSolid(objName string, s gjson.Result) (Key, float64, RejectReason) {
	if !s.IsObject() {
		return Key{}, 0, RejectSolidNotObject
	}

	name, ok := effectiveName(objName, s.Get(fieldObjectName))
	if !ok {
		return Key{}, 0, RejectNameNotString
	}

	idx := s.Get(fieldIndex)
	if idx.Type != gjson.Number || strings.ContainsAny(idx.Raw, ".eE") {
		return Key{}, 0, RejectIndexNotInteger
	}
	index, err := strconv.Atoi(idx.Raw)
	if err != nil {
		return Key{}, 0, RejectIndexNotInteger
	}
	if index < 0 {
		return Key{}, 0, RejectIndexNegative
	}

	metrics := s.Get(fieldMetrics)
	if metrics.Exists() && !metrics.IsObject() {
		return Key{}, 0, RejectMetricsNotObject
	}
	volume := metrics.Get(fieldVolume)
	if volume.Type != gjson.Number {
		return Key{}, 0, RejectVolumeNotNumber
	}

	return Key{Name: name, Index: index}, volume.Float(), ""
}

// effectiveName returns the per-solid override when it is a non-empty string
// and the enclosing object key when the override is absent, null or empty.
func effectiveName(objName string, override gjson.Result) (string, bool) {
	switch override.Type {
	case gjson.Null:
		return objName, true
	case gjson.String:
		if override.Str == "" {
			return objName, true
		}
		return override.Str, true
	default:
		return "", false
	}
}
