package store

import "task-manager-cli/internal/api"

// errMessage picks the message a failed call leaves behind: the server's
// detail when there was one, otherwise the operation's fallback string.
func errMessage(err error, fallback string) string {
	return api.Detail(err, fallback)
}
