package main

import (
	"garage/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.TicketModel{},
		model.TicketAssignmentModel{},
		model.NotificationModel{},
		model.CustomerProfileModel{},
		model.VehicleModel{},
		model.PartModel{},
		model.AuditLogModel{},
		model.ProfileModel{},
		model.UserRoleModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
