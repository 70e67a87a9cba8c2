package ftpfetch

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/c2fo/ftpfetch/types"
	"github.com/c2fo/ftpfetch/utils"
)

var timestampedNameGetter func(string) string
var now = time.Now

func init() {
	// this func is overridable for tests
	timestampedNameGetter = getTimestampedName
}

// getTimestampedName suffixes name with the current unix timestamp, ahead of
// any extension: "report.csv" becomes "report-1693412345.csv".
func getTimestampedName(origName string) string {
	ext := path.Ext(origName)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(origName, ext), now().Unix(), ext)
}

// Fetch downloads remotePath into localDir and returns the local path written.
//
// The session's working directory is changed to the remote file's directory
// and the transfer type is set (binary, unless Options.TransferType says
// otherwise) before the download; failures of either step are returned, not
// ignored. When localDir already holds a file with the remote base name, that
// pre-existing file is preserved untouched and the download is saved under a
// timestamp-suffixed name instead. A partially written local file is removed
// on download failure.
func (s *Session) Fetch(remotePath, localDir string) (string, error) {
	if s == nil || s.client == nil {
		return "", ErrSessionRequired
	}
	if remotePath == "" {
		return "", ErrRemotePathRequired
	}

	remoteDir, name := path.Dir(remotePath), path.Base(remotePath)

	if err := s.client.ChangeDir(remoteDir); err != nil {
		return "", utils.WrapChangeDirError(err)
	}

	transferType := s.options.TransferType
	if transferType == "" {
		transferType = types.TransferTypeBinary
	}
	if err := s.client.Type(transferType); err != nil {
		return "", utils.WrapTransferTypeError(err)
	}

	localPath := filepath.Join(localDir, name)
	if _, err := os.Stat(localPath); err == nil {
		// keep the existing local file untouched and divert the download
		localPath = filepath.Join(localDir, timestampedNameGetter(name))
	} else if !os.IsNotExist(err) {
		return "", err
	}

	resp, err := s.client.Retr(name)
	if err != nil {
		return "", utils.WrapFetchError(err)
	}
	defer func() { _ = resp.Close() }()

	local, err := os.Create(localPath)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(local, resp); err != nil {
		_ = local.Close()
		_ = os.Remove(localPath)
		return "", utils.WrapFetchError(err)
	}

	if err := local.Close(); err != nil {
		_ = os.Remove(localPath)
		return "", err
	}

	return localPath, nil
}

// FetchAll downloads each remote path in order, one at a time. The first
// failure aborts the batch; the local paths fetched before the failure are
// returned alongside the error.
func (s *Session) FetchAll(remotePaths []string, localDir string) ([]string, error) {
	localPaths := make([]string, 0, len(remotePaths))
	for _, remotePath := range remotePaths {
		localPath, err := s.Fetch(remotePath, localDir)
		if err != nil {
			return localPaths, fmt.Errorf("fetch %s: %w", remotePath, err)
		}
		localPaths = append(localPaths, localPath)
	}

	return localPaths, nil
}
