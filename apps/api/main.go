package main

import (
	"log"
	"os"

	echoapi "github.com/Bam123-spec/drivofy-v2-sub001/apps/api/echo"
	"github.com/Bam123-spec/drivofy-v2-sub001/core"
	"github.com/Bam123-spec/drivofy-v2-sub001/core/student"
	logsvc "github.com/Bam123-spec/drivofy-v2-sub001/services/logger"
)

func main() {
	conf := core.LoadConfig()

	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up services
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}
	studentSvc := student.NewService(conf, logger)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:    conf.Server.Address,
			Conf:       conf,
			Logger:     logger,
			StudentSvc: studentSvc,
		},
	)
	app.Start()
}
