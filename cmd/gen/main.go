package main

import (
	"pinesvet/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.UserDeviceModel{},
		model.PetModel{},
		model.AppointmentModel{},
		model.TimeSlotModel{},
		model.SlotReservationModel{},
		model.ProductModel{},
		model.CartItemModel{},
		model.OrderModel{},
		model.FeedEntryModel{},
		model.PlanChangeModel{},
		model.NewsletterSubscriberModel{},
		model.AdminCredentialModel{},
		model.AdminActivityModel{},
		model.OverlaySettingsModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
