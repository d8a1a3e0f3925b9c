package main

import (
	"log"
	"os"

	"github.com/Bam123-spec/drivofy-v2-sub001/core"
	"github.com/Bam123-spec/drivofy-v2-sub001/core/student"
	logsvc "github.com/Bam123-spec/drivofy-v2-sub001/services/logger"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.LoadConfig()

	// start CLI
	cli := commandLine{
		svc:      student.NewService(conf, logsvc.NewStdLogger(logger)),
		adminKey: conf.Onboarding.AdminKey,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
