package frontend

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_members/table"
	"go.uber.org/zap"
)

var membersPage = newFrontendPage("MembersPage", "members.gohtml",
	frontendComponents{
		header,
		membersTable,
		paginator,
		modal,
	})

func newFrontendPage(pageName, templateName string, components frontendComponents) frontendPage {
	return frontendPage{
		name:         pageName,
		templateName: templateName,
		components:   components,
	}
}

type frontendPage struct {
	name         string
	templateName string
	components   frontendComponents
}

// render renders the page for the given table state. Components whose data
// could not be provided are left out and the generic error is shown instead.
func (p frontendPage) render(ctx *gin.Context, r *frontendRouter, status int, state table.State, alert string) {
	if alert == "" {
		alert = state.Err
	}

	components := make(map[string]interface{}, len(p.components))
	for _, component := range p.components {
		data, err := component.dataProvider(state, r)
		if err != nil {
			r.logger.Error("could not provide component data",
				zap.String("page", p.name),
				zap.String("component", component.name),
				zap.Error(err))
			alert = table.GenericError
			continue
		}
		components[component.name] = data
	}

	ctx.HTML(status, p.templateName, pageDataModel{
		Cfg:        *r.cfg,
		Alert:      alert,
		Components: components,
	})
}
