package gdacs

import "encoding/xml"

// CAPAlert is a Common Alerting Protocol (CAP 1.2) alert document, the
// cap_{eventID}.xml resource variant.
type CAPAlert struct {
	XMLName    xml.Name  `xml:"alert"`
	Identifier string    `xml:"identifier"`
	Sender     string    `xml:"sender"`
	Sent       string    `xml:"sent"`
	Status     string    `xml:"status"`
	MsgType    string    `xml:"msgType"`
	Scope      string    `xml:"scope"`
	Info       []CAPInfo `xml:"info"`
}

// CAPInfo is one language-specific info block of a CAP alert.
type CAPInfo struct {
	Language    string    `xml:"language"`
	Category    string    `xml:"category"`
	Event       string    `xml:"event"`
	Urgency     string    `xml:"urgency"`
	Severity    string    `xml:"severity"`
	Certainty   string    `xml:"certainty"`
	Headline    string    `xml:"headline"`
	Description string    `xml:"description"`
	Areas       []CAPArea `xml:"area"`
}

// CAPArea describes the geographic extent of a CAP info block.
type CAPArea struct {
	Description string `xml:"areaDesc"`
	Polygon     string `xml:"polygon"`
	Circle      string `xml:"circle"`
}

// RSSFeed is an episode feed document, the rss_{eventID}[_{episodeID}].xml
// resource variant.
type RSSFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Channel RSSChannel `xml:"channel"`
}

type RSSChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	PubDate     string    `xml:"pubDate"`
	Items       []RSSItem `xml:"item"`
}

type RSSItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

func parseCAPAlert(data []byte) (*CAPAlert, error) {
	var alert CAPAlert
	if err := xml.Unmarshal(data, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

func parseRSSFeed(data []byte) (*RSSFeed, error) {
	var feed RSSFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}
