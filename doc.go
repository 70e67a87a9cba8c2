/*
Package ftpfetch is a small convenience layer for fetching files over FTP: connect,
authenticate, list remote files, and download one or more of them to a local
directory. All protocol work (control connection, passive negotiation, data
transfer) is delegated to github.com/jlaffaye/ftp.

# Usage

Call directly:

	  import "github.com/c2fo/ftpfetch"

	  func DoSomething() error {
		  session, err := ftpfetch.Open("bob@ftp.acme.com")
		  if err != nil {
			 return err
		  }
		  defer session.Close()

		  names, err := session.List("/pub")
		  if err != nil {
			 return err
		  }

		  saved, err := session.FetchAll(names, "/tmp/downloads")
		  ...
	  }

Or chain the stages through a Pipeline, which short-circuits on the first
failure without attempting later operations:

	  p := ftpfetch.Start("ftp.acme.com:2121")
	  p.Login("bob", "s3cr3t")
	  saved := p.FetchAll(p.List("/pub"), "/tmp/downloads")
	  if err := p.Err(); err != nil {
		  #handle error
	  }

ftpfetch is written against the types.Client interface so the protocol engine can
be swapped or stubbed.  To pass a specific client (in this case, _ftp
github.com/jlaffaye/ftp wrapped by the package's own adapter, or any other
types.Client implementation):

	session, err := ftpfetch.Dial("ftp.acme.com", ftpfetch.WithClient(client))

# Authentication

Open resolves credentials from following sources. Precedence for username is
Options.UserName, env var *FTPFETCH_USERNAME*, the authority userinfo section,
then the default "anonymous".  Password precedence is Options.Password, env var
*FTPFETCH_PASSWORD*, authority userinfo (discouraged per RFC 3986), then
"anonymous".

	 scheme             host
	 __/             ___/____  port
	/  \            /        \ /\
	ftp://someuser@server.com:21/path/to/file.txt
	       \____________________/ \______________/
	       \______/       \               \
	           /     authority section    path
	     username

Dial and Login leave credential handling entirely to the caller.

# Collision handling

Fetch never overwrites an existing local file.  When the destination name is
already taken, the pre-existing file is left untouched and the new download is
saved under a unix-timestamp-suffixed name ("report.csv" becomes
"report-1693412345.csv").  The path actually written is always returned.

# Other Options

DebugWriter *io.Writer* - captures FTP command details to any writer.

DialTimeout *time.Duration - sets timeout for connecting only.

DisableEPSV bool - Extended Passive mode (EPSV) is attempted by default. Set to true to use regular Passive mode (PASV).

TransferType types.TransferType - representation type for downloads, binary unless set.

A Session holds a single control connection with no pooling, no concurrent
transfers, and no retry policy.  Batch fetches run strictly one file at a time
in input order and abort on the first failure.
*/
package ftpfetch
