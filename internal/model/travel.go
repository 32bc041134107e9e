package model

import "time"

// TravelLeg is a business-travel Scope 3 record.
type TravelLeg struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Date       time.Time `gorm:"not null" json:"date"`
	TravelType string    `gorm:"size:32;not null" json:"travelType"` // Flight-Short, Flight-Medium, Flight-Long, Rail, Car
	ClassType  string    `gorm:"size:32" json:"classType"`           // Economy, Business, First
	DistanceKm float64   `gorm:"not null" json:"distanceKm"`
	CO2Kg      float64   `gorm:"column:co2_kg" json:"co2Kg"`
	CreatedAt  time.Time `json:"createdAt"`
}
