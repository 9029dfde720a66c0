package app

import (
	"tubeplan/router"

	assetCtrlImp "tubeplan/pkg/asset/controllerImp"
	assetRepoImp "tubeplan/pkg/asset/repositoryImp"
	channelCtrlImp "tubeplan/pkg/channel/controllerImp"
	experimentCtrlImp "tubeplan/pkg/experiment/controllerImp"
	experimentRepoImp "tubeplan/pkg/experiment/repositoryImp"
	healthCtrlImp "tubeplan/pkg/health/controllerImp"
	ideaCtrlImp "tubeplan/pkg/idea/controllerImp"
	ideaRepoImp "tubeplan/pkg/idea/repositoryImp"
	metricCtrlImp "tubeplan/pkg/metric/controllerImp"
	metricRepoImp "tubeplan/pkg/metric/repositoryImp"
	referenceCtrlImp "tubeplan/pkg/reference/controllerImp"
	workflowCtrlImp "tubeplan/pkg/workflow/controllerImp"
)

// Controllers builds every HTTP controller on the app's shared db.
func (a *App) Controllers() router.Controllers {
	return router.Controllers{
		Channel:    channelCtrlImp.New(a.Channel),
		Ideas:      ideaCtrlImp.New(ideaRepoImp.New(a.DB)),
		Assets:     assetCtrlImp.New(assetRepoImp.New(a.DB)),
		Snapshots:  metricCtrlImp.New(metricRepoImp.New(a.DB), a.Metrics),
		Experiment: experimentCtrlImp.New(experimentRepoImp.New(a.DB)),
		References: referenceCtrlImp.New(a.References),
		Workflow:   workflowCtrlImp.New(a.Workflow),
		Health:     healthCtrlImp.NewHealthCtrl(a.DB, a.Redis),
		Metrics:    a.Metrics.Handler(),
	}
}
