/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package interfaces

// Table is implemented by an application's table objects. The registry
// does not dictate a table format; it only routes load and dump requests
// to the owning object and records the outcome.
//
// The mode byte is passed through opaquely. For loads the framework
// defines replace and update values but their exact semantics (whole
// table overwrite vs sparse field update) belong to the implementation.
// For dumps the byte is a user defined qualifier.
//
// Both methods return true on success. Implementations are expected to
// report their own failure detail to the event sink.
type Table interface {
	LoadTable(mode uint8, filename string) bool
	DumpTable(mode uint8, filename string) bool
}
