//go:build rp2040

package main

import (
	"machine"
)

const (
	rtcI2CFrequency = 400 * machine.KHz
	rtcSDAPin       = machine.GPIO4 // I2C0 SDA
	rtcSCLPin       = machine.GPIO5 // I2C0 SCL
)

// configureRTCBus initializes I2C0 for the DS3231
func configureRTCBus() (*machine.I2C, error) {
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{
		Frequency: rtcI2CFrequency,
		SDA:       rtcSDAPin,
		SCL:       rtcSCLPin,
	})
	if err != nil {
		return nil, err
	}
	return i2c, nil
}
