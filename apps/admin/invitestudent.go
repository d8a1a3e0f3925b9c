package main

import (
	"errors"
	"fmt"

	"github.com/Bam123-spec/drivofy-v2-sub001/core/student"
)

// inviteStudent drives one onboarding call and reports the outcome.
// The onboarding client handles validation and retries itself.
func (cli *commandLine) inviteStudent(email, name, phone, adminKey string) error {
	res := cli.svc.Invite(
		student.InviteStudent{Email: email, FullName: name, Phone: phone},
		student.Options{AdminKey: adminKey},
	)
	if !res.Success {
		return errors.New(res.Message)
	}
	if res.UserID != "" {
		fmt.Printf("%s [user: %s, request: %s]\n", res.Message, res.UserID, res.RequestID)
	} else {
		fmt.Printf("%s [request: %s]\n", res.Message, res.RequestID)
	}
	return nil
}
