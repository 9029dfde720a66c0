package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	assetCtrl "tubeplan/pkg/asset/controller"
	channelCtrl "tubeplan/pkg/channel/controller"
	experimentCtrl "tubeplan/pkg/experiment/controller"
	healthCtrl "tubeplan/pkg/health/controller"
	ideaCtrl "tubeplan/pkg/idea/controller"
	metricCtrl "tubeplan/pkg/metric/controller"
	referenceCtrl "tubeplan/pkg/reference/controller"
	workflowCtrl "tubeplan/pkg/workflow/controller"
)

type Controllers struct {
	Channel    channelCtrl.ChannelController
	Ideas      ideaCtrl.IdeaController
	Assets     assetCtrl.AssetController
	Snapshots  metricCtrl.MetricController
	Experiment experimentCtrl.ExperimentController
	References referenceCtrl.ReferenceController
	Workflow   workflowCtrl.WorkflowController
	Health     healthCtrl.HealthController
	Metrics    http.Handler
}

func New(e *echo.Echo, c Controllers) *echo.Echo {
	e.GET("/health", c.Health.Health)
	if c.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(c.Metrics))
	}

	e.GET("/channel", c.Channel.Get)
	e.POST("/channel", c.Channel.Configure)

	// export is static, so echo matches it ahead of /ideas/:id
	e.GET("/ideas", c.Ideas.List)
	e.GET("/ideas/export", c.Ideas.Export)
	e.GET("/ideas/:id", c.Ideas.Get)
	e.GET("/ideas/:id/assets", c.Assets.ByIdea)
	e.GET("/assets", c.Assets.List)

	e.GET("/snapshots", c.Snapshots.List)
	e.POST("/snapshots", c.Snapshots.Create)

	e.GET("/experiments", c.Experiment.List)
	e.PATCH("/experiments/:id", c.Experiment.Patch)

	refs := e.Group("/references")
	refs.POST("", c.References.IngestText)
	refs.POST("/url", c.References.IngestURL)
	refs.GET("/search", c.References.Search)

	e.POST("/backlog/refresh", c.Workflow.Refresh)
	e.POST("/packages/build", c.Workflow.Package)
	e.POST("/snapshots/ingest", c.Workflow.Ingest)
	e.POST("/diagnose", c.Workflow.Diagnose)
	e.POST("/weekly", c.Workflow.Weekly)
	return e
}
