package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataTypeValidate(t *testing.T) {
	cases := []struct {
		name     string
		dataType DataType
		valid    bool
	}{
		{"temperature celsius", DataType{MeasurementTemperature, UnitCelsius}, true},
		{"temperature fahrenheit", DataType{MeasurementTemperature, UnitFahrenheit}, true},
		{"temperature kelvin", DataType{MeasurementTemperature, UnitKelvin}, true},
		{"temperature pascal", DataType{MeasurementTemperature, UnitPascal}, false},
		{"velocity m/s", DataType{MeasurementVelocity, UnitMetersPerSecond}, true},
		{"velocity km/h", DataType{MeasurementVelocity, UnitKilometersPerHour}, true},
		{"velocity gram", DataType{MeasurementVelocity, UnitGram}, false},
		{"acceleration m/s²", DataType{MeasurementAcceleration, UnitMetersPerSecondSquared}, true},
		{"acceleration m/s", DataType{MeasurementAcceleration, UnitMetersPerSecond}, false},
		{"time second", DataType{MeasurementTime, UnitSecond}, true},
		{"time minute", DataType{MeasurementTime, UnitMinute}, true},
		{"time hour", DataType{MeasurementTime, UnitHour}, true},
		{"pressure pascal", DataType{MeasurementPressure, UnitPascal}, true},
		{"pressure bar", DataType{MeasurementPressure, UnitBar}, true},
		{"pressure volt", DataType{MeasurementPressure, UnitVolt}, false},
		{"mass kilogram", DataType{MeasurementMass, UnitKilogram}, true},
		{"mass gram", DataType{MeasurementMass, UnitGram}, true},
		{"voltage volt", DataType{MeasurementVoltage, UnitVolt}, true},
		{"voltage millivolt", DataType{MeasurementVoltage, UnitMillivolt}, true},
		{"voltage celsius", DataType{MeasurementVoltage, UnitCelsius}, false},
		{"unknown type", DataType{MeasurementType("humidity"), UnitCelsius}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.dataType.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDataTypeListContains(t *testing.T) {
	list := DataTypeList{
		{MeasurementTemperature, UnitCelsius},
		{MeasurementPressure, UnitBar},
	}

	assert.True(t, list.Contains(DataType{MeasurementTemperature, UnitCelsius}))
	assert.True(t, list.Contains(DataType{MeasurementPressure, UnitBar}))
	assert.False(t, list.Contains(DataType{MeasurementTemperature, UnitKelvin}))
	assert.False(t, list.Contains(DataType{MeasurementMass, UnitGram}))
}

func TestDataTypeListScanRoundTrip(t *testing.T) {
	list := DataTypeList{{MeasurementTemperature, UnitCelsius}}

	value, err := list.Value()
	assert.NoError(t, err)

	var decoded DataTypeList
	assert.NoError(t, decoded.Scan(value))
	assert.Equal(t, list, decoded)

	var fromString DataTypeList
	assert.NoError(t, fromString.Scan(string(value.([]byte))))
	assert.Equal(t, list, fromString)
}
