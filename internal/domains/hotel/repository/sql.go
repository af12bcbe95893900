package repository

const getHotelBySlugSQL = `
SELECT
	h.id, h.slug, h.title, h.description, h.guest_count, h.bedroom_count,
	h.bathroom_count, h.amenities, h.host_name, h.host_image, h.address,
	h.latitude, h.longitude,
	COALESCE(array_agg(hi.image_url) FILTER (WHERE hi.image_url IS NOT NULL), '{}') AS images
FROM hotels h
LEFT JOIN hotel_images hi ON h.id = hi.hotel_id
WHERE h.slug = $1
GROUP BY h.id`
