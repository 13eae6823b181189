package schema

// Example is a small, valid form description useful as a starting point in
// editors and for smoke tests.
const Example = `{
  "fields": [
    {
      "name": "firstName",
      "type": "string",
      "required": true,
      "label": "First name",
      "placeholder": "Enter your first name"
    },
    {
      "name": "lastName",
      "type": "string",
      "required": true,
      "label": "Last name"
    },
    {
      "name": "age",
      "type": "number",
      "required": false,
      "label": "Age"
    },
    {
      "name": "isActive",
      "type": "boolean",
      "required": false,
      "label": "Active"
    }
  ]
}`
