package sqlstmt

import "errors"

var (
	ErrConnClosed               = errors.New("connection is closed")
	ErrStmtClosed               = errors.New("statement handle is closed")
	ErrFailedToPrepareStatement = errors.New("failed to prepare statement")
)
