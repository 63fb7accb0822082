package rates

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<Cube>
		<Cube time="2025-08-29">
			<Cube currency="USD" rate="1.0832"/>
			<Cube currency="JPY" rate="162.45"/>
			<Cube currency="GBP" rate="0.8471"/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

func testClient() *Client {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &Client{log: log}
}

func TestParseRates(t *testing.T) {
	rates, err := testClient().parseRates([]byte(sampleFeed))
	require.NoError(t, err)
	assert.Len(t, rates, 3)
	assert.Equal(t, 1.0832, rates["USD"])
	assert.Equal(t, 0.8471, rates["GBP"])
}

func TestParseRatesEmptyFeed(t *testing.T) {
	_, err := testClient().parseRates([]byte(`<Envelope></Envelope>`))
	assert.Error(t, err)
}

func TestParseRatesMalformedXML(t *testing.T) {
	_, err := testClient().parseRates([]byte(`not xml at all`))
	assert.Error(t, err)
}
