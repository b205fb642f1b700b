package gsmarena

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// GetDeviceDetail assembles the full record of a device. The second return
// value is false when the device page could not be fetched, whether it does
// not exist or upstream is unreachable.
func (s Scraper) GetDeviceDetail(ctx context.Context, id Identifier) (Device, bool) {
	ctx, span := tracer.Start(ctx, "GetDeviceDetail")
	defer span.End()
	span.SetAttributes(attribute.String("device.key", id.String()))

	doc, err := s.fetcher.Fetch(ctx, id.Endpoint())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch device page")
		s.tel.ReportWarning(report_detail_fetch, err, id.String())
		return Device{}, false
	}

	// the gallery fetch only needs the identifier, so it overlaps parsing
	gallery := s.StartPictures(ctx, id)

	device := AssembleDevice(id, doc)
	device.Pictures = mergePictures(device.Pictures, <-gallery)

	s.tel.ReportCount(report_detail_spec_sections, int64(len(device.MoreSpecification)))
	s.tel.ReportCount(report_detail_pictures_count, int64(len(device.Pictures)))

	return device, true
}

// AssembleDevice runs every parser over a device page. It never fails,
// missing markup yields empty values. Pictures only holds the thumbnails of
// the page itself.
func AssembleDevice(id Identifier, doc *goquery.Document) Device {
	fields := ExtractFields(doc.Selection, DeviceFields)

	return Device{
		Key:         id.String(),
		DeviceName:  fields[FieldDeviceName],
		DeviceImage: fields[FieldDeviceImage],
		DisplaySize: fields[FieldDisplaySize],
		DisplayRes:  fields[FieldDisplayRes],
		Camera:      fields[FieldCamera],
		Video:       fields[FieldVideo],
		Ram:         fields[FieldRam],
		Chipset:     fields[FieldChipset],
		Battery:     fields[FieldBattery],
		BatteryType: fields[FieldBatteryType],
		ReleaseDate: fields[FieldReleaseDate],
		Body:        fields[FieldBody],
		OsType:      fields[FieldOsType],
		Storage:     fields[FieldStorage],
		Comment:     fields[FieldComment],

		MoreSpecification: ParseSpecs(doc.Selection, SingleDevice),
		Prices:            ParsePrices(doc.Selection),
		Pictures:          mergePictures(pictureUrls(doc.Selection, selectorPagePictures)),
		MoreInformation:   ParseRelated(doc),
	}
}
