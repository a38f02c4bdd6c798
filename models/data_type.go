package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// MeasurementType represents the physical quantity a device measures
type MeasurementType string

const (
	MeasurementTemperature  MeasurementType = "temperature"
	MeasurementVelocity     MeasurementType = "velocity"
	MeasurementAcceleration MeasurementType = "acceleration"
	MeasurementTime         MeasurementType = "time"
	MeasurementPressure     MeasurementType = "pressure"
	MeasurementMass         MeasurementType = "mass"
	MeasurementVoltage      MeasurementType = "voltage"
)

// MeasurementUnit represents the unit a measurement is expressed in
type MeasurementUnit string

const (
	// Temperature
	UnitCelsius    MeasurementUnit = "celsius"
	UnitFahrenheit MeasurementUnit = "fahrenheit"
	UnitKelvin     MeasurementUnit = "kelvin"

	// Velocity
	UnitMetersPerSecond   MeasurementUnit = "m/s"
	UnitKilometersPerHour MeasurementUnit = "km/h"

	// Acceleration
	UnitMetersPerSecondSquared MeasurementUnit = "m/s²"

	// Time
	UnitSecond MeasurementUnit = "second"
	UnitMinute MeasurementUnit = "minute"
	UnitHour   MeasurementUnit = "hour"

	// Pressure
	UnitPascal MeasurementUnit = "pascal"
	UnitBar    MeasurementUnit = "bar"

	// Mass
	UnitKilogram MeasurementUnit = "kilogram"
	UnitGram     MeasurementUnit = "gram"

	// Voltage
	UnitVolt      MeasurementUnit = "volt"
	UnitMillivolt MeasurementUnit = "millivolt"
)

// validUnits maps each measurement type to the units it may be expressed in
var validUnits = map[MeasurementType][]MeasurementUnit{
	MeasurementTemperature:  {UnitCelsius, UnitFahrenheit, UnitKelvin},
	MeasurementVelocity:     {UnitMetersPerSecond, UnitKilometersPerHour},
	MeasurementAcceleration: {UnitMetersPerSecondSquared},
	MeasurementTime:         {UnitSecond, UnitMinute, UnitHour},
	MeasurementPressure:     {UnitPascal, UnitBar},
	MeasurementMass:         {UnitKilogram, UnitGram},
	MeasurementVoltage:      {UnitVolt, UnitMillivolt},
}

// DataType declares a measurement type together with the unit it is reported in
type DataType struct {
	MeasurementType MeasurementType `json:"measurementType"`
	MeasurementUnit MeasurementUnit `json:"measurementUnit"`
}

// Validate ensures the unit belongs to the declared measurement type
func (d DataType) Validate() error {
	units, ok := validUnits[d.MeasurementType]
	if !ok {
		return fmt.Errorf("unknown measurement type '%s'", d.MeasurementType)
	}
	for _, unit := range units {
		if unit == d.MeasurementUnit {
			return nil
		}
	}
	return fmt.Errorf("invalid unit '%s' for measurement type '%s'", d.MeasurementUnit, d.MeasurementType)
}

// Value implements driver.Valuer for JSON storage
func (d DataType) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSON storage
func (d *DataType) Scan(value interface{}) error {
	return scanJSON(value, d)
}

// DataTypeList is the set of data types a device declares, stored as a JSON column
type DataTypeList []DataType

func (l DataTypeList) Value() (driver.Value, error) {
	if l == nil {
		l = DataTypeList{}
	}
	return json.Marshal(l)
}

func (l *DataTypeList) Scan(value interface{}) error {
	if value == nil {
		*l = DataTypeList{}
		return nil
	}
	return scanJSON(value, l)
}

// Contains reports whether the list declares the given data type by value equality
func (l DataTypeList) Contains(d DataType) bool {
	for _, declared := range l {
		if declared == d {
			return true
		}
	}
	return false
}

func scanJSON(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("type assertion to []byte failed")
	}
}
