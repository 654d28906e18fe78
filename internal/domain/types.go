// Package domain declares the academic entities sciseed generates and the
// row contract the persistence gateways consume.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// University is the constant university name carried by every faculty.
const University = "National and Kapodistrian University of Athens"

type Address struct {
	ID             int    `json:"address_id" yaml:"address_id"`
	StreetName     string `json:"address_name" yaml:"address_name"`
	BuildingNumber string `json:"address_number" yaml:"address_number"`
	City           string `json:"city" yaml:"city"`
	Country        string `json:"country" yaml:"country"`
	PostalCode     string `json:"postal_code" yaml:"postal_code"`
}

type Faculty struct {
	ID             int    `json:"faculty_id" yaml:"faculty_id"`
	Name           string `json:"name" yaml:"name"`
	UniversityName string `json:"university_name" yaml:"university_name"`
}

// Conference is produced without foreign keys; FacultyID and AddressID are
// assigned by the stitcher before the record is persisted.
type Conference struct {
	ID        int       `json:"conference_id" yaml:"conference_id"`
	FacultyID int       `json:"faculty_id" yaml:"faculty_id"`
	AddressID int       `json:"address_id" yaml:"address_id"`
	Title     string    `json:"title" yaml:"title"`
	StartDate time.Time `json:"start_date" yaml:"start_date"`
	EndDate   time.Time `json:"end_date" yaml:"end_date"`
}

type Scientist struct {
	ID      int    `json:"scientist_id" yaml:"scientist_id"`
	Title   Title  `json:"title" yaml:"title"`
	Name    string `json:"name" yaml:"name"`
	Surname string `json:"surname" yaml:"surname"`
}

// ScientistFaculty records that a scientist works at a faculty.
type ScientistFaculty struct {
	FacultyID   int `json:"faculty_id" yaml:"faculty_id"`
	ScientistID int `json:"scientist_id" yaml:"scientist_id"`
}

// PHD is produced without foreign keys; ScientistID (the candidate) and
// SupervisorID are assigned by the stitcher.
type PHD struct {
	ID           int       `json:"phd_id" yaml:"phd_id"`
	DateReceived time.Time `json:"date_received" yaml:"date_received"`
	Description  string    `json:"description" yaml:"description"`
	Title        string    `json:"title" yaml:"title"`
	ScientistID  int       `json:"scientist_id" yaml:"scientist_id"`
	SupervisorID int       `json:"supervisor_id" yaml:"supervisor_id"`
}

type Publication struct {
	ID      int    `json:"publication_id" yaml:"publication_id"`
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`
}

type Funding struct {
	ID        int             `json:"funding_id" yaml:"funding_id"`
	Funder    string          `json:"funder" yaml:"funder"`
	Budget    decimal.Decimal `json:"budget" yaml:"budget"`
	StartDate time.Time       `json:"start_date" yaml:"start_date"`
	EndDate   time.Time       `json:"end_date" yaml:"end_date"`
}
