package layout

const beginnerReadme = `# Beginner Level

## What You'll Learn
- Python basics and syntax
- Core programming concepts
- Simple projects to build confidence

## Recommended Order
1. Setup Python environment
2. Learn basic syntax
3. Practice with exercises
4. Build simple projects

## Resources
- Check the ` + "`Books/`" + ` folder for beginner-friendly books
- Watch tutorials in the ` + "`Videos/`" + ` folder
- Practice with exercises in the ` + "`Exercises/`" + ` folder
`

const intermediateReadme = `# Intermediate Level

## What You'll Learn
- Object-Oriented Programming
- Working with databases
- Web development basics
- API integration

## Prerequisites
- Completed Beginner level
- Comfortable with Python syntax
- Built at least 2-3 simple projects

## Resources
- Check folders for curated materials
- Focus on building larger projects
`

const advancedReadme = `# Advanced Level

## What You'll Learn
- Advanced Python concepts
- Performance optimization
- Design patterns
- Async programming

## Prerequisites
- Strong foundation in Python
- Experience with multiple projects
- Understanding of OOP principles
`

const specializationsReadme = `# Specialization Tracks

Choose a track based on your career goals:

## Web Development
Full-stack web development with Python frameworks

## Data Science
Data analysis, visualization, and insights

## Machine Learning
AI and ML model development

## Automation
Scripting and task automation

## DevOps
Infrastructure and deployment
`

const interviewPrepReadme = `# Interview Preparation

## Contents
- Coding challenges organized by difficulty
- System design questions
- Common Python interview questions
- Tips and strategies

## How to Use
1. Start with Easy challenges
2. Progress to Medium and Hard
3. Practice system design
4. Review common questions regularly
`

const cheatsheetsReadme = `# Cheatsheets

Quick reference guides for:
- Python syntax
- Data structures
- Common algorithms
- Standard library
- Best practices

Perfect for quick review before interviews or projects!
`

const toolsAndSetupReadme = `# Tools and Setup

## Contents
- Python installation guides
- IDE setup and configuration
- Git and GitHub setup
- Virtual environment setup
- Development tools

Start here if you're setting up your development environment!
`
