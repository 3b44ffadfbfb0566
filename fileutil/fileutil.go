/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package fileutil provides the filename and file state checks the
// framework applies before handing a path to a table or configuration
// loader.
package fileutil

import (
	"bufio"
	"os"
	"strings"

	"github.com/AstraFW/AstraFW/common/interfaces"
)

const (
	// MaxPathLen bounds every filename accepted by the framework.
	MaxPathLen = 64

	// DirSepChar separates path elements.
	DirSepChar = '/'
)

// Event IDs
const (
	EIDInvalidFilenameLen = 1400
	EIDInvalidFilenameChr = 1401
	EIDFileReadOpenErr    = 1402
)

// FileState classifies a path for diagnostic reporting.
type FileState uint8

const (
	FileStateUndefined FileState = iota
	FilenameInvalid
	FileNonexistent
	FileExists
	FileIsDir
)

var fileStateStr = [...]string{
	"Undefined",
	"Invalid Filename",
	"Nonexistent File",
	"File Exists",
	"File is a Directory",
}

func (s FileState) String() string {
	if s > FileIsDir {
		s = FileStateUndefined
	}
	return fileStateStr[s]
}

// filenameChars are the non-alphanumeric characters allowed in a path.
const filenameChars = "`~!@#$^&_-/.+="

// Util carries the event sink for the verification helpers.
type Util struct {
	logger interfaces.Logger
}

// New returns a Util bound to the supplied event sink.
func New(logger interfaces.Logger) *Util {
	return &Util{logger: logger}
}

// VerifyFilenameStr verifies a filename's length and characters.
func (u *Util) VerifyFilenameStr(filename string) bool {

	if len(filename) == 0 {
		u.logger.Errorf(EIDInvalidFilenameLen, "Invalid filename string: Length is 0")
		return false
	}

	if len(filename) > MaxPathLen {
		u.logger.Errorf(EIDInvalidFilenameLen,
			"Invalid filename string: Length %d exceeds maximum %d", len(filename), MaxPathLen)
		return false
	}

	if !isValidFilename(filename) {
		u.logger.Errorf(EIDInvalidFilenameChr, "Invalid characters in filename %s", filename)
		return false
	}

	return true
}

// VerifyFileForRead verifies the filename is valid and that the file can
// be opened for reading. The file is opened and closed again rather than
// handed back, because callers often pass the name on to another
// component that insists on opening the file itself.
func (u *Util) VerifyFileForRead(filename string) bool {

	if !u.VerifyFilenameStr(filename) {
		return false
	}

	file, err := os.Open(filename)
	if err != nil {
		u.logger.Errorf(EIDFileReadOpenErr, "Read file open failed for %s", filename)
		return false
	}
	_ = file.Close()

	return true
}

// VerifyDirForWrite verifies the filename is valid and that its parent
// directory exists.
func (u *Util) VerifyDirForWrite(filename string) bool {

	if !u.VerifyFilenameStr(filename) {
		return false
	}

	dir := filename
	if i := strings.LastIndexByte(filename, DirSepChar); i >= 0 {
		dir = filename[:i]
	} else {
		// Bare filename, current directory
		return true
	}
	if dir == "" {
		dir = string(DirSepChar)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		u.logger.Errorf(EIDFileReadOpenErr, "Directory %s does not exist for write of %s", dir, filename)
		return false
	}

	return true
}

// GetFileState classifies filename without opening it.
func (u *Util) GetFileState(filename string) FileState {

	if !u.VerifyFilenameStr(filename) {
		return FilenameInvalid
	}

	info, err := os.Stat(filename)
	if err != nil {
		return FileNonexistent
	}

	if info.IsDir() {
		return FileIsDir
	}

	return FileExists
}

// AppendPathSep appends a path separator to a directory path if one is
// not already present. Returns false if the string is empty or the
// result would exceed max.
func AppendPathSep(dirName string, max int) (string, bool) {

	if len(dirName) == 0 || len(dirName) > max {
		return dirName, false
	}

	if dirName[len(dirName)-1] == DirSepChar {
		return dirName, true
	}

	if len(dirName)+1 > max {
		return dirName, false
	}

	return dirName + string(DirSepChar), true
}

// ReadLine reads one newline terminated line of at most max bytes.
// Returns false when the line did not fit or the reader is exhausted.
func ReadLine(r *bufio.Reader, max int) (string, bool) {

	var sb strings.Builder

	for sb.Len() < max-1 {
		c, err := r.ReadByte()
		if err != nil {
			return sb.String(), false
		}
		sb.WriteByte(c)
		if c == '\n' {
			return sb.String(), true
		}
	}

	return sb.String(), false
}

// isValidFilename scans for disallowed characters.
func isValidFilename(filename string) bool {
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			continue
		}
		if strings.IndexByte(filenameChars, c) < 0 {
			return false
		}
	}
	return true
}
