package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli"

	"github.com/c2fo/ftpfetch"
	"github.com/c2fo/ftpfetch/utils"
)

func main() {
	app := cli.NewApp()
	app.Name = "ftpfetch"
	app.Usage = "Lists and fetches files from an FTP server"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "user, u",
			Usage:  "username for the ftp server",
			EnvVar: "FTPFETCH_USERNAME",
		},
		cli.StringFlag{
			Name:   "password, p",
			Usage:  "password for the ftp server",
			EnvVar: "FTPFETCH_PASSWORD",
		},
		cli.DurationFlag{
			Name:  "timeout, t",
			Usage: "dial timeout",
		},
		cli.BoolFlag{
			Name:  "no-epsv",
			Usage: "disable extended passive mode (EPSV)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "write ftp command details to stderr",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "ls",
			Usage:     "list file names in a remote directory",
			ArgsUsage: "<host[:port]> [path]",
			Action:    listAction,
		},
		{
			Name:      "get",
			Usage:     "fetch one or more remote files into a local directory",
			ArgsUsage: "<host[:port]> <remote path>...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir, d",
					Value: ".",
					Usage: "local directory to save into",
				},
			},
			Action: getAction,
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func openSession(c *cli.Context, host string) (*ftpfetch.Session, error) {
	if host == "" {
		return nil, errors.New("ftpfetch requires a non-empty host argument")
	}

	authorityStr := host
	if user := c.GlobalString("user"); user != "" {
		authorityStr = utils.EncodeAuthority(fmt.Sprintf("%s@%s", user, host))
	}

	opts := ftpfetch.Options{
		Password:    c.GlobalString("password"),
		DialTimeout: c.GlobalDuration("timeout"),
		DisableEPSV: c.GlobalBool("no-epsv"),
	}
	if c.GlobalBool("debug") {
		opts.DebugWriter = os.Stderr
	}

	return ftpfetch.Open(authorityStr, ftpfetch.WithOptions(opts))
}

func listAction(c *cli.Context) error {
	session, err := openSession(c, c.Args().Get(0))
	if err != nil {
		return err
	}
	defer session.Close()

	names, err := session.List(c.Args().Get(1))
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func getAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("get requires a host and at least one remote path")
	}

	localDir, err := homedir.Expand(c.String("dir"))
	if err != nil {
		return err
	}

	session, err := openSession(c, c.Args().Get(0))
	if err != nil {
		return err
	}
	defer session.Close()

	saved, err := session.FetchAll(c.Args().Tail(), localDir)
	for _, localPath := range saved {
		color.Green("saved %s", localPath)
	}
	return err
}
