package model

import "time"

type Intervention struct {
	InterventionID           int64      `gorm:"column:intervention_id;primaryKey"`
	Title                    string     `gorm:"column:title;type:text;size:255;not null;default:''"`
	Description              string     `gorm:"column:description;type:text;size:1000;not null;default:''"`
	Type                     string     `gorm:"column:type;type:text;size:100;not null;default:''"`
	Evaluation               string     `gorm:"column:evaluation;type:text;size:50;not null;default:''"`
	DateAnnounced            *time.Time `gorm:"column:date_announced"`
	ImplementationDate       *time.Time `gorm:"column:implementation_date"`
	RemovalDate              *time.Time `gorm:"column:removal_date"`
	ImplementingJurisdiction string     `gorm:"column:implementing_jurisdiction;type:text;size:255;not null;default:''"`
	AffectedJurisdictions    string     `gorm:"column:affected_jurisdictions;type:text;size:500;not null;default:''"`
	TargetedProductsHS6      string     `gorm:"column:targeted_products_hs6;type:text;size:1000;not null;default:''"`
	TargetedSectorsCPC3      string     `gorm:"column:targeted_sectors_cpc3;type:text;size:500;not null;default:''"`
	Source                   string     `gorm:"column:source;type:text;size:500;not null;default:''"`
	LastSyncedAt             time.Time  `gorm:"column:last_synced_at;not null"`
	SyncOrigin               string     `gorm:"column:sync_origin;type:text;size:50;not null;default:''"`
}

func (Intervention) TableName() string {
	return "interventions"
}
