package main

import (
	"testing"

	"github.com/Bam123-spec/drivofy-v2-sub001/core/student"
)

type stubService struct {
	invites []student.InviteStudent
	keys    []string
	res     student.Result
}

func (s *stubService) Invite(inv student.InviteStudent, opts ...student.Options) student.Result {
	s.invites = append(s.invites, inv)
	if len(opts) > 0 {
		s.keys = append(s.keys, opts[0].AdminKey)
	}
	return s.res
}

type cliTest struct {
	name       string
	args       []string // without program name
	adminKey   string
	prompted   string
	res        student.Result
	wantErr    error
	wantErrStr string
	wantCalls  int
	wantKey    string
}

func Test_commandLine_inviteStudent(t *testing.T) {
	okRes := student.Result{Success: true, Message: "Student created. Magic link email sent.", RequestID: "req-1"}

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"invitestudent"}, wantErr: errHelp},
		{name: "email but no name", args: []string{"invitestudent", "-email", "a@b.cd"}, wantErr: errHelp},
		{name: "name but no email", args: []string{"invitestudent", "-name", "Jane"}, wantErr: errHelp},
		{
			name:     "key prompt declined",
			args:     []string{"invitestudent", "-email", "a@b.cd", "-name", "Jane"},
			prompted: "",
			wantErr:  errHelp,
		},
		{
			name:      "key prompted",
			args:      []string{"invitestudent", "-email", "a@b.cd", "-name", "Jane"},
			prompted:  "prompted-key",
			res:       okRes,
			wantCalls: 1,
			wantKey:   "prompted-key",
		},
		{
			name:      "key from config",
			args:      []string{"invitestudent", "-email", "a@b.cd", "-name", "Jane", "-phone", "+243810000000"},
			adminKey:  "configured-key",
			res:       okRes,
			wantCalls: 1,
			wantKey:   "configured-key",
		},
		{
			name:       "failed invite surfaces message",
			args:       []string{"invitestudent", "-email", "dup@b.cd", "-name", "Dup"},
			adminKey:   "configured-key",
			res:        student.Result{Message: "Student already exists. Ask them to log in or reset password.", StatusCode: 409},
			wantErrStr: "Student already exists. Ask them to log in or reset password.",
			wantCalls:  1,
		},
	}
	for _, tt := range tests {
		svc := &stubService{res: tt.res}
		cli := &commandLine{svc: svc, adminKey: tt.adminKey}
		readPasswordFunc = func(fd int) ([]byte, error) {
			return []byte(tt.prompted), nil
		}

		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || err.Error() != tt.wantErrStr {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			case err != nil:
				t.Errorf("cli.run() unexpected error = %v", err)
			}

			if len(svc.invites) != tt.wantCalls {
				t.Fatalf("service called %d times, want %d", len(svc.invites), tt.wantCalls)
			}
			if tt.wantKey != "" && svc.keys[0] != tt.wantKey {
				t.Errorf("admin key = %q, want %q", svc.keys[0], tt.wantKey)
			}
		})
	}
}
