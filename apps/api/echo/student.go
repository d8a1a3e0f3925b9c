package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bam123-spec/drivofy-v2-sub001/core/student"
)

type studentApi struct {
	svc student.ServiceInterface
}

func registerStudentAPI(g *echo.Group, svc student.ServiceInterface) {
	api := studentApi{svc: svc}

	sg := g.Group("/students")
	sg.POST("/invite", api.invite)
}

// invite surfaces the onboarding client to the admin portal. The client does
// its own retries; this handler must not add any.
func (api *studentApi) invite(ctx echo.Context) error {
	var inv student.InviteStudent
	if err := ctx.Bind(&inv); err != nil {
		return err
	}

	res := api.svc.Invite(inv, student.Options{
		RequestID: ctx.Request().Header.Get(echo.HeaderXRequestID),
	})
	if res.Success {
		return ctx.JSON(http.StatusOK, res)
	}

	code := res.StatusCode
	if code == 0 {
		code = http.StatusBadGateway
	}
	return ctx.JSON(code, echo.Map{"error": res.Message, "requestId": res.RequestID})
}
