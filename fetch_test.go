package ftpfetch

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftpfetch/mocks"
	"github.com/c2fo/ftpfetch/types"
)

type fetchTestSuite struct {
	suite.Suite
	client  *mocks.Client
	session *Session
}

func TestFetch(t *testing.T) {
	suite.Run(t, new(fetchTestSuite))
}

func (ts *fetchTestSuite) SetupTest() {
	ts.client = mocks.NewClient(ts.T())
	ts.session = NewSession(WithClient(ts.client))
}

// failingReader returns its error on every read.
type failingReader struct {
	err error
}

func (r *failingReader) Read(_ []byte) (int, error) {
	return 0, r.err
}

func (ts *fetchTestSuite) TestFetch() {
	localDir := ts.T().TempDir()
	contents := "hello world!"

	ts.client.EXPECT().
		ChangeDir("/pub").
		Return(nil).
		Once()
	ts.client.EXPECT().
		Type(types.TransferTypeBinary).
		Return(nil).
		Once()
	ts.client.EXPECT().
		Retr("report.csv").
		Return(io.NopCloser(strings.NewReader(contents)), nil).
		Once()

	localPath, err := ts.session.Fetch("/pub/report.csv", localDir)
	ts.NoError(err, "no error expected on fetch")
	ts.Equal(filepath.Join(localDir, "report.csv"), localPath, "saved under the remote base name")

	saved, err := os.ReadFile(localPath)
	ts.NoError(err, "saved file should be readable")
	ts.Equal(contents, string(saved), "saved contents should match the remote stream")
}

func (ts *fetchTestSuite) TestFetch_RelativeRemotePath() {
	localDir := ts.T().TempDir()

	// a bare filename transfers from the current remote directory
	ts.client.EXPECT().
		ChangeDir(".").
		Return(nil).
		Once()
	ts.client.EXPECT().
		Type(types.TransferTypeBinary).
		Return(nil).
		Once()
	ts.client.EXPECT().
		Retr("notes.txt").
		Return(io.NopCloser(strings.NewReader("notes")), nil).
		Once()

	localPath, err := ts.session.Fetch("notes.txt", localDir)
	ts.NoError(err, "no error expected on fetch")
	ts.Equal(filepath.Join(localDir, "notes.txt"), localPath)
}

func (ts *fetchTestSuite) TestFetch_TransferTypeOption() {
	localDir := ts.T().TempDir()
	s := NewSession(WithClient(ts.client), WithOptions(Options{TransferType: types.TransferTypeASCII}))

	ts.client.EXPECT().
		ChangeDir("/pub").
		Return(nil).
		Once()
	ts.client.EXPECT().
		Type(types.TransferTypeASCII).
		Return(nil).
		Once()
	ts.client.EXPECT().
		Retr("readme.txt").
		Return(io.NopCloser(strings.NewReader("hi")), nil).
		Once()

	_, err := s.Fetch("/pub/readme.txt", localDir)
	ts.NoError(err, "no error expected on ascii fetch")
}

func (ts *fetchTestSuite) TestFetch_Collision() {
	localDir := ts.T().TempDir()
	existing := filepath.Join(localDir, "report.csv")
	ts.NoError(os.WriteFile(existing, []byte("original"), 0o600))

	now = func() time.Time { return time.Unix(1693412345, 0) }
	defer func() { now = time.Now }()

	ts.client.EXPECT().
		ChangeDir("/pub").
		Return(nil).
		Once()
	ts.client.EXPECT().
		Type(types.TransferTypeBinary).
		Return(nil).
		Once()
	ts.client.EXPECT().
		Retr("report.csv").
		Return(io.NopCloser(strings.NewReader("fresh")), nil).
		Once()

	localPath, err := ts.session.Fetch("/pub/report.csv", localDir)
	ts.NoError(err, "no error expected on colliding fetch")
	ts.Equal(filepath.Join(localDir, "report-1693412345.csv"), localPath, "download diverted to a timestamped name")
	ts.NotEqual(existing, localPath, "saved path must differ from the existing file")

	preexisting, err := os.ReadFile(existing)
	ts.NoError(err)
	ts.Equal("original", string(preexisting), "pre-existing file left untouched")

	saved, err := os.ReadFile(localPath)
	ts.NoError(err)
	ts.Equal("fresh", string(saved), "download written next to the original")
}

func (ts *fetchTestSuite) TestFetch_ChangeDirError() {
	cdErr := errors.New("some change dir error")
	ts.client.EXPECT().
		ChangeDir("/private").
		Return(cdErr).
		Once()

	_, err := ts.session.Fetch("/private/report.csv", ts.T().TempDir())
	ts.ErrorIs(err, cdErr, "change-directory failure should surface, not be ignored")
}

func (ts *fetchTestSuite) TestFetch_TransferTypeError() {
	typeErr := errors.New("some transfer type error")
	ts.client.EXPECT().
		ChangeDir("/pub").
		Return(nil).
		Once()
	ts.client.EXPECT().
		Type(types.TransferTypeBinary).
		Return(typeErr).
		Once()

	_, err := ts.session.Fetch("/pub/report.csv", ts.T().TempDir())
	ts.ErrorIs(err, typeErr, "transfer-type failure should surface, not be ignored")
}

func (ts *fetchTestSuite) TestFetch_RetrError() {
	localDir := ts.T().TempDir()
	retrErr := errors.New("some retr error")

	ts.client.EXPECT().
		ChangeDir("/pub").
		Return(nil).
		Once()
	ts.client.EXPECT().
		Type(types.TransferTypeBinary).
		Return(nil).
		Once()
	ts.client.EXPECT().
		Retr("report.csv").
		Return(nil, retrErr).
		Once()

	_, err := ts.session.Fetch("/pub/report.csv", localDir)
	ts.ErrorIs(err, retrErr, "underlying error expected")

	_, statErr := os.Stat(filepath.Join(localDir, "report.csv"))
	ts.True(os.IsNotExist(statErr), "no local file should be written for a failed download")
}

func (ts *fetchTestSuite) TestFetch_ReadError() {
	localDir := ts.T().TempDir()
	readErr := errors.New("some read error")

	ts.client.EXPECT().
		ChangeDir("/pub").
		Return(nil).
		Once()
	ts.client.EXPECT().
		Type(types.TransferTypeBinary).
		Return(nil).
		Once()
	ts.client.EXPECT().
		Retr("report.csv").
		Return(io.NopCloser(io.MultiReader(strings.NewReader("partial"), &failingReader{err: readErr})), nil).
		Once()

	_, err := ts.session.Fetch("/pub/report.csv", localDir)
	ts.ErrorIs(err, readErr, "underlying error expected")

	_, statErr := os.Stat(filepath.Join(localDir, "report.csv"))
	ts.True(os.IsNotExist(statErr), "partially written file should be removed")
}

func (ts *fetchTestSuite) TestFetch_BadInput() {
	_, err := ts.session.Fetch("", ts.T().TempDir())
	ts.ErrorIs(err, ErrRemotePathRequired, "empty remote path is rejected")

	var nilSession *Session
	_, err = nilSession.Fetch("/pub/report.csv", ts.T().TempDir())
	ts.ErrorIs(err, ErrSessionRequired, "nil session cannot fetch")
}

func (ts *fetchTestSuite) TestFetchAll() {
	localDir := ts.T().TempDir()

	ts.client.EXPECT().
		ChangeDir("/pub").
		Return(nil).
		Times(2)
	ts.client.EXPECT().
		Type(types.TransferTypeBinary).
		Return(nil).
		Times(2)
	ts.client.EXPECT().
		Retr("a.csv").
		Return(io.NopCloser(strings.NewReader("a")), nil).
		Once()
	ts.client.EXPECT().
		Retr("b.csv").
		Return(io.NopCloser(strings.NewReader("b")), nil).
		Once()

	localPaths, err := ts.session.FetchAll([]string{"/pub/a.csv", "/pub/b.csv"}, localDir)
	ts.NoError(err, "no error expected on batch fetch")
	ts.Equal([]string{
		filepath.Join(localDir, "a.csv"),
		filepath.Join(localDir, "b.csv"),
	}, localPaths, "local paths returned in input order")
}

func (ts *fetchTestSuite) TestFetchAll_MidBatchFailure() {
	localDir := ts.T().TempDir()
	retrErr := errors.New("some retr error")

	ts.client.EXPECT().
		ChangeDir("/pub").
		Return(nil).
		Times(2)
	ts.client.EXPECT().
		Type(types.TransferTypeBinary).
		Return(nil).
		Times(2)
	ts.client.EXPECT().
		Retr("a.csv").
		Return(io.NopCloser(strings.NewReader("a")), nil).
		Once()
	ts.client.EXPECT().
		Retr("b.csv").
		Return(nil, retrErr).
		Once()

	// the third file is never attempted - the mock would reject the call
	localPaths, err := ts.session.FetchAll([]string{"/pub/a.csv", "/pub/b.csv", "/pub/c.csv"}, localDir)
	ts.ErrorIs(err, retrErr, "mid-batch failure should surface")
	ts.Contains(err.Error(), "/pub/b.csv", "error should name the failing remote file")
	ts.Equal([]string{filepath.Join(localDir, "a.csv")}, localPaths, "paths fetched before the failure are returned")
}

func TestGetTimestampedName(t *testing.T) {
	now = func() time.Time { return time.Unix(1693412345, 0) }
	defer func() { now = time.Now }()

	tests := []struct {
		origName string
		expected string
	}{
		{"report.csv", "report-1693412345.csv"},
		{"archive.tar.gz", "archive.tar-1693412345.gz"},
		{"README", "README-1693412345"},
	}

	for _, tt := range tests {
		if got := getTimestampedName(tt.origName); got != tt.expected {
			t.Errorf("expected %v, got %v", tt.expected, got)
		}
	}
}
