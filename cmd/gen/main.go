package main

import (
	"hivewatch/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.SensorModel{},
		model.AlertModel{},
		model.HiveModel{},
		model.ApiaryModel{},
		model.InterventionModel{},
		model.UserModel{},
		model.MembershipModel{},
		model.NotificationModel{},
		model.NotificationDispatchModel{},
		model.UserDeviceModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
