package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent
// tables in the database schema.
var DatabaseModels = []interface{}{
	&GeneratorInfo{},
	&Hypercube{},
	&Scene{},
}

// GeneratorInfo contains information about the generator instance.
type GeneratorInfo struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:127"`
	Description string `json:"description" gorm:"size:255"`
}

func (*GeneratorInfo) TableName() string {
	return "generator_infos"
}

// Hypercube is one generated scene family.
type Hypercube struct {
	gorm.Model
	UUID   string `json:"uuid" gorm:"size:36;uniqueIndex"`
	Name   string `json:"name" gorm:"size:127"`
	Design string `json:"design" gorm:"size:63"`
	Seed   int64  `json:"seed"`
	Scenes []Scene `json:"scenes" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignkey:HypercubeID"`
}

func (*Hypercube) TableName() string {
	return "hypercubes"
}

// Scene is one member of a hypercube. The placed objects are stored as a
// JSON document rather than rows, since consumers always read a scene whole.
type Scene struct {
	gorm.Model
	UUID        string `json:"uuid" gorm:"size:36;uniqueIndex"`
	HypercubeID uint   `json:"hypercubeId" gorm:"index:idx_scene_hypercube_id"`
	Name        string `json:"name" gorm:"size:127"`

	RoomMinX float64 `json:"roomMinX"`
	RoomMaxX float64 `json:"roomMaxX"`
	RoomMinZ float64 `json:"roomMinZ"`
	RoomMaxZ float64 `json:"roomMaxZ"`

	PerformerX        float64 `json:"performerX"`
	PerformerZ        float64 `json:"performerZ"`
	PerformerRotation int     `json:"performerRotation"`

	FloorMaterial string `json:"floorMaterial" gorm:"size:63"`
	WallMaterial  string `json:"wallMaterial" gorm:"size:63"`

	Objects datatypes.JSON `json:"objects"`
}

func (*Scene) TableName() string {
	return "scenes"
}

// ObjectPayload is the JSON shape of one placed object inside Scene.Objects.
type ObjectPayload struct {
	UUID       string    `json:"uuid"`
	Type       string    `json:"type"`
	Untrained  bool      `json:"untrained,omitempty"`
	Position   [3]float64 `json:"position"`
	Rotation   float64   `json:"rotation"`
	Dimensions [3]float64 `json:"dimensions"`
	Offset     [3]float64 `json:"offset,omitempty"`
	Scale      [3]float64 `json:"scale"`
	Mass       float64   `json:"mass"`
	MaterialID string    `json:"materialId,omitempty"`
	Colors     []string  `json:"colors,omitempty"`

	Pickupable bool `json:"pickupable,omitempty"`
	Moveable   bool `json:"moveable,omitempty"`
	Receptacle bool `json:"receptacle,omitempty"`
	Openable   bool `json:"openable,omitempty"`
	Occluder   bool `json:"occluder,omitempty"`
	Obstacle   bool `json:"obstacle,omitempty"`

	LocationParent string   `json:"locationParent,omitempty"`
	ParentArea     string   `json:"parentArea,omitempty"`
	Children       []string `json:"children,omitempty"`
}
