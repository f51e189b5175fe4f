package sqlite

import (
	"github.com/felixgeelhaar/ego/internal/session"
)

// Ensure the SQLite history store implements the tracker's archive interface.
var _ session.Archive = (*HistoryStore)(nil)
