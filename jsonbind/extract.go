/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package jsonbind

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// segmentBytes limits how much raw sub-document text goes into a single
// debug event.
const segmentBytes = 100

// Extract searches buf for the descriptor's key and, on a match, copies
// the value into the descriptor's destination. The key is required: a
// missing key is reported to the event sink. Returns true only if the
// destination was updated.
func (b *Binder) Extract(obj *Obj, buf []byte) bool {
	return b.extract(obj, buf, true)
}

// ExtractOptional behaves like Extract but a missing key is silent.
func (b *Binder) ExtractOptional(obj *Obj, buf []byte) bool {
	return b.extract(obj, buf, false)
}

// ExtractArray applies Extract to every descriptor against the same
// buffer and returns how many succeeded. Every descriptor is always
// attempted so callers can report partial success.
func (b *Binder) ExtractArray(objs []Obj, buf []byte) int {
	cnt := 0
	for i := range objs {
		if b.Extract(&objs[i], buf) {
			cnt++
		}
	}
	return cnt
}

func (b *Binder) extract(obj *Obj, buf []byte, required bool) bool {

	obj.Updated = false

	res := gjson.GetBytes(buf, obj.Key)
	if !res.Exists() {
		if required {
			b.logger.Infof(EIDNotFound, "JSON search failed for query %s", obj.Key)
		}
		return false
	}

	found := kindOf(res)
	b.logger.Debugf(EIDExtract, "Extract: key=%s, type=%s, value=%s", obj.Key, found, res.Raw)

	if found != obj.Kind {
		b.logger.Errorf(EIDTypeMismatchErr, "JSON type %s returned for query %s expecting type %s",
			found, obj.Key, obj.Kind)
		return false
	}

	switch obj.Kind {

	case KindString:
		val := res.String()
		if len(val) >= obj.StrMax {
			b.logger.Errorf(EIDOverflowErr, "JSON string length %d exceeds %s's max length %d",
				len(val), obj.Key, obj.StrMax-1)
			return false
		}
		*obj.StrVal = val
		obj.Updated = true
		return true

	case KindNumber:
		raw := res.Raw
		if len(raw) > MaxNumberLen {
			b.logger.Errorf(EIDParseErr, "JSON number conversion error for value %s", raw)
			return false
		}
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			b.logger.Errorf(EIDParseErr, "JSON number conversion error for value %s", raw)
			return false
		}
		*obj.IntVal = int32(n)
		obj.Updated = true
		return true

	case KindObject, KindArray:
		b.logger.Infof(EIDSubDocument, "JSON %s for query %s, len = %d", obj.Kind, obj.Key, len(res.Raw))
		b.logSubDocument(res.Raw)
		return false

	default:
		b.logger.Errorf(EIDUnsupportedErr, "Unsupported JSON type %s for query %s", obj.Kind, obj.Key)
		return false
	}
}

// logSubDocument emits the raw sub-document in bounded segments so a
// single oversized event cannot swamp the sink.
func (b *Binder) logSubDocument(raw string) {
	for i := 0; i < len(raw); i += segmentBytes {
		end := i + segmentBytes
		if end > len(raw) {
			end = len(raw)
		}
		b.logger.Debugf(EIDSubDocument, "%s", raw[i:end])
	}
}
