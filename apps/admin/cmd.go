package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/Bam123-spec/drivofy-v2-sub001/core/student"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	svc      student.ServiceInterface
	adminKey string // from config; prompted when empty
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  invitestudent -email EMAIL -name FULLNAME [-phone PHONE] - invite a new student")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	inviteCmd := flag.NewFlagSet("invitestudent", flag.ExitOnError)
	inviteEmail := inviteCmd.String("email", "", "The student's email address.")
	inviteName := inviteCmd.String("name", "", "The student's full name.")
	invitePhone := inviteCmd.String("phone", "", "The student's phone number (optional).")

	switch args[1] {
	case "invitestudent":
		if err := inviteCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *inviteEmail == "" || *inviteName == "" {
			inviteCmd.Usage()
			return errHelp
		}
		key := cli.adminKey
		if key == "" {
			fmt.Print("Enter admin key:")
			raw, err := readPasswordFunc(syscall.Stdin)
			fmt.Println()
			if err != nil {
				return err
			}
			if len(raw) == 0 {
				inviteCmd.Usage()
				return errHelp
			}
			key = string(raw)
		}
		return cli.inviteStudent(*inviteEmail, *inviteName, *invitePhone, key)
	default:
		cli.printUsage()
		return errHelp
	}
}
