package render

import "fmt"

// htmlTemplate wraps the SVG document in a standalone page with a
// checkerboard background, so transparent regions outside the map read as
// "nothing here" when opened in a browser.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en-US">
<head>
    <meta charset="utf-8">
    <style>
        html {
            background: white;
            color: white;
            /* https://stackoverflow.com/posts/35362074/revisions */
            background-image: linear-gradient(45deg, #ccc 25%%, transparent 25%%), linear-gradient(-45deg, #ccc 25%%, transparent 25%%), linear-gradient(45deg, transparent 75%%, #ccc 75%%), linear-gradient(-45deg, transparent 75%%, #ccc 75%%);
            background-size: 20px 20px;
            background-position: 0 0, 0 10px, 10px -10px, -10px 0px;
        }
    </style>
    <meta name="viewport" content="width=device-width, initial-scale=1.0, viewport-fit=cover">
</head>
<body>
    %s
</body>
`

// HTML wraps a rendered SVG document in the standalone HTML page.
func HTML(svg []byte) []byte {
	return []byte(fmt.Sprintf(htmlTemplate, svg))
}
