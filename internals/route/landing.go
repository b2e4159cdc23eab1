package routes

// Static landing page; the real UI talks to /api with a bearer token.
const landingPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>HRMS Lite</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; background: #f4f6f8; color: #1f2937; }
    .wrap { max-width: 720px; margin: 8rem auto; padding: 0 1.5rem; text-align: center; }
    h1 { font-size: 2.25rem; margin-bottom: .5rem; }
    p { color: #6b7280; }
    code { background: #e5e7eb; padding: .15rem .4rem; border-radius: 4px; }
  </style>
</head>
<body>
  <div class="wrap">
    <h1>HRMS Lite</h1>
    <p>Employee records &amp; daily attendance tracking.</p>
    <p>Sign in via <code>POST /api/auth/login</code> and call the API with your bearer token.</p>
  </div>
</body>
</html>
`
